package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecDecodes(t *testing.T) {
	spec, err := Spec()
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", spec["openapi"])
	paths, ok := spec["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/appointments")
	assert.Contains(t, paths, "/doctors/search/{field}")
}

func TestServeDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, err := NewHandler()
	require.NoError(t, err)

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api"), nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/docs/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/yaml")
	assert.Equal(t, openAPISpec, w.Body.Bytes())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/docs/openapi.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Doctor Channel API", body["info"].(map[string]interface{})["title"])
}
