package requests_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"limitless-backend/internal/bootstrap"
	"limitless-backend/internal/requests"
	"limitless-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		ObjectStoreType: "local",
		JWTSecret:       "test-secret",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func operatorToken(t *testing.T, app *bootstrap.App) string {
	t.Helper()
	if resp := doJSON(t, app.Router, http.MethodPost, "/api/register", "", gin.H{"email": "op@b.com", "password": "s3cret"}); resp.Code != http.StatusCreated {
		t.Fatalf("register operator: expected 201, got %d", resp.Code)
	}
	resp := doJSON(t, app.Router, http.MethodPost, "/api/login", "", gin.H{"email": "op@b.com", "password": "s3cret"})
	if resp.Code != http.StatusOK {
		t.Fatalf("login operator: expected 200, got %d", resp.Code)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	return body.Token
}

func TestIntakeCreatesPendingRequest(t *testing.T) {
	app := newTestApp(t)
	token := operatorToken(t, app)

	resp := doJSON(t, app.Router, http.MethodPost, "/api/request-resume", "", gin.H{
		"email":       "a@b.com",
		"linkedinUrl": "https://linkedin.com/in/x",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	listResp := doJSON(t, app.Router, http.MethodGet, "/api/requests", token, nil)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", listResp.Code)
	}
	var list []requests.Request
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 request, got %d", len(list))
	}
	if list[0].Status != requests.StatusPending {
		t.Fatalf("expected Pending, got %q", list[0].Status)
	}
	if list[0].CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestIntakeValidatesFields(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app.Router, http.MethodPost, "/api/request-resume", "", gin.H{"email": "a@b.com"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestNewestRequestListsFirst(t *testing.T) {
	app := newTestApp(t)
	token := operatorToken(t, app)

	for _, handle := range []string{"first", "second", "third"} {
		resp := doJSON(t, app.Router, http.MethodPost, "/api/request-resume", "", gin.H{
			"email":       "a@b.com",
			"linkedinUrl": "https://linkedin.com/in/" + handle,
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("intake %s: expected 200, got %d", handle, resp.Code)
		}
	}

	listResp := doJSON(t, app.Router, http.MethodGet, "/api/requests", token, nil)
	var list []requests.Request
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("list not newest-first at index %d", i)
		}
	}
}

func TestListRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app.Router, http.MethodGet, "/api/requests", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestPatchWithoutBodyMarksSent(t *testing.T) {
	app := newTestApp(t)
	token := operatorToken(t, app)

	if resp := doJSON(t, app.Router, http.MethodPost, "/api/request-resume", "", gin.H{
		"email":       "a@b.com",
		"linkedinUrl": "https://linkedin.com/in/x",
	}); resp.Code != http.StatusOK {
		t.Fatalf("intake: expected 200, got %d", resp.Code)
	}

	listResp := doJSON(t, app.Router, http.MethodGet, "/api/requests", token, nil)
	var list []requests.Request
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	id := list[0].ID

	patchResp := doJSON(t, app.Router, http.MethodPatch, "/api/requests/"+id, token, nil)
	if patchResp.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", patchResp.Code, patchResp.Body.String())
	}
	var updated requests.Request
	if err := json.NewDecoder(patchResp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Status != requests.StatusSent {
		t.Fatalf("expected Sent, got %q", updated.Status)
	}
}

func TestPatchWithCustomStatusStoresVerbatim(t *testing.T) {
	app := newTestApp(t)
	token := operatorToken(t, app)

	if resp := doJSON(t, app.Router, http.MethodPost, "/api/request-resume", "", gin.H{
		"email":       "a@b.com",
		"linkedinUrl": "https://linkedin.com/in/x",
	}); resp.Code != http.StatusOK {
		t.Fatalf("intake: expected 200, got %d", resp.Code)
	}

	listResp := doJSON(t, app.Router, http.MethodGet, "/api/requests", token, nil)
	var list []requests.Request
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}

	patchResp := doJSON(t, app.Router, http.MethodPatch, "/api/requests/"+list[0].ID, token, gin.H{"status": "Custom"})
	var updated requests.Request
	if err := json.NewDecoder(patchResp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Status != "Custom" {
		t.Fatalf("expected Custom, got %q", updated.Status)
	}
}

func TestPatchUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)
	token := operatorToken(t, app)

	resp := doJSON(t, app.Router, http.MethodPatch, "/api/requests/no-such-id", token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestPatchRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app.Router, http.MethodPatch, "/api/requests/some-id", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}
