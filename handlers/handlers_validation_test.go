package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// These cover the request-shape checks that run before any store access.

func TestCreateAssetRejectsMalformedBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	CreateAsset(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssetRejectsMissingRequiredFields(t *testing.T) {
	body := `{"model": "XPS 13"}`
	r := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader(body))
	w := httptest.NewRecorder()
	CreateAsset(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "AssetID")
	assert.Contains(t, w.Body.String(), "AssetName")
}

func TestCreateAssetRejectsUnknownStatus(t *testing.T) {
	body := `{"assetId":"AST-1","assetName":"Dell","assetType":"Laptop","status":"Broken"}`
	r := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader(body))
	w := httptest.NewRecorder()
	CreateAsset(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be one of")
}

func TestCreateUserRejectsBadEmailAndRole(t *testing.T) {
	body := `{"userId":"U-1","username":"alice","email":"nope","role":"wizard"}`
	r := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	w := httptest.NewRecorder()
	CreateUser(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
	assert.Contains(t, w.Body.String(), "Role")
}

func TestCreateAssignmentRejectsMissingReferences(t *testing.T) {
	body := `{"notes":"no ids"}`
	r := httptest.NewRequest(http.MethodPost, "/api/assignments", strings.NewReader(body))
	w := httptest.NewRecorder()
	CreateAssignment(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UserID")
	assert.Contains(t, w.Body.String(), "AssetID")
}

func TestAssignmentHandlersRejectInvalidObjectID(t *testing.T) {
	for _, h := range []http.HandlerFunc{GetAssignment, UpdateAssignment, DeleteAssignment} {
		r := httptest.NewRequest(http.MethodGet, "/api/assignments/not-a-hex-id", nil)
		r = mux.SetURLVars(r, map[string]string{"id": "not-a-hex-id"})
		w := httptest.NewRecorder()
		h(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
