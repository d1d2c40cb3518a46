package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doctor-channel/internal/middleware"
	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/service/auth"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/httputil"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, _ *middleware.AuthMiddleware) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAuthError(c, httputil.BindError(err))
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAuthError(c, httputil.BindError(err))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, resp)
}

// respondAuthError answers client errors in the {success:false, message}
// shape the login form reads. Server-side failures use the common error body.
func respondAuthError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode() >= http.StatusInternalServerError {
		httputil.RespondWithError(c, err)
		return
	}

	message := appErr.Message
	if appErr.Code == apperrors.ErrUnauthorized {
		message = "Invalid credentials"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.StatusCode(), model.AuthResponse{
		Success: false,
		Message: message,
	})
}
