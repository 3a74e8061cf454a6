package utils

import (
	"encoding/json"
	"net/http"
)

const maxBodyBytes = 1 << 20

// ParseJSON parses a JSON request body, capped at 1MB.
func ParseJSON(r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
