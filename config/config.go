// config/config.go
package config

import (
	"log/slog"
	"os"
	"time"
)

var (
	Port          string
	MongoURI      string
	DatabaseName  string
	JWTKey        []byte
	JWTExpiration time.Duration
	FrontendURL   string
)

// AuthCookieName is the cookie the frontend stores the JWT in.
const AuthCookieName = "Authtoken"

func LoadConfig() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5001"
	}

	MongoURI = os.Getenv("MONGODB_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	DatabaseName = os.Getenv("MONGODB_DATABASE")
	if DatabaseName == "" {
		DatabaseName = "assetmanagement"
	}

	JWTKey = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTKey) == 0 {
		JWTKey = []byte("secret")
	}

	FrontendURL = os.Getenv("FRONTEND_URL")

	expireStr := os.Getenv("JWT_EXPIRE")
	dur := 24 * time.Hour
	if expireStr != "" {
		if expireStr == "7d" {
			dur = 7 * 24 * time.Hour
		} else {
			var err error
			dur, err = time.ParseDuration(expireStr)
			if err != nil {
				slog.Warn("invalid JWT_EXPIRE, using 24h", "value", expireStr)
				dur = 24 * time.Hour
			}
		}
	}
	JWTExpiration = dur
}
