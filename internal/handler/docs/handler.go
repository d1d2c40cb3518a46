package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/jwalitptl/doctor-channel/internal/middleware"
)

//go:embed openapi.yaml
var openAPISpec []byte

// Handler serves the OpenAPI document for the HTTP API.
type Handler struct {
	spec map[string]interface{}
}

func NewHandler() (*Handler, error) {
	spec, err := Spec()
	if err != nil {
		return nil, err
	}
	return &Handler{spec: spec}, nil
}

// Spec decodes the embedded document.
func Spec() (map[string]interface{}, error) {
	var spec map[string]interface{}
	if err := yaml.Unmarshal(openAPISpec, &spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, _ *middleware.AuthMiddleware) {
	docs := r.Group("/docs")
	{
		docs.GET("/openapi.yaml", h.YAML)
		docs.GET("/openapi.json", h.JSON)
	}
}

func (h *Handler) YAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", openAPISpec)
}

func (h *Handler) JSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.spec)
}
