package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupJSONRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/echo", RequireJSON(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return router
}

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "valid object", body: `{"email":"a@x.com"}`, wantStatus: http.StatusOK},
		{name: "empty object", body: `{}`, wantStatus: http.StatusOK},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest},
		{name: "invalid json", body: `{"email":`, wantStatus: http.StatusBadRequest},
		{name: "json array", body: `[1,2,3]`, wantStatus: http.StatusBadRequest},
		{name: "json null", body: `null`, wantStatus: http.StatusBadRequest},
		{name: "bare string", body: `"hello"`, wantStatus: http.StatusBadRequest},
	}

	router := setupJSONRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireJSON_BodyStillReadableDownstream(t *testing.T) {
	router := setupJSONRouter()

	body := `{"email":"a@x.com","password":"secret1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != body {
		t.Errorf("downstream body = %s, want original body", w.Body.String())
	}
}

func TestRequireJSON_ErrorShape(t *testing.T) {
	router := setupJSONRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("nope"))
	router.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Error("error message missing from response")
	}
}
