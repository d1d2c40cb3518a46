package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doctor-channel/internal/middleware"
	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/service/doctor"
	"github.com/jwalitptl/doctor-channel/pkg/httputil"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.GET("/:id/payment-quote", h.PaymentQuote)
		doctors.GET("/search/:field", h.SearchDoctors)

		doctors.POST("", auth.RequireAdmin(), h.CreateDoctor)
		doctors.PUT("/:id", auth.RequireAdmin(), h.UpdateDoctor)
		doctors.DELETE("/:id", auth.RequireAdmin(), h.DeleteDoctor)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, httputil.BindError(err))
		return
	}

	d, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, model.DoctorResponse{
		Success: true,
		Message: "Doctor added successfully",
		Doctor:  d,
	})
}

func (h *Handler) GetDoctor(c *gin.Context) {
	d, err := h.service.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, d)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, doctors)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var req model.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, httputil.BindError(err))
		return
	}

	d, err := h.service.UpdateDoctor(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, d)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.service.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchDoctors serves /doctors/search/{name|specialty|city}. The term is read
// from ?q= or from a parameter named after the field.
func (h *Handler) SearchDoctors(c *gin.Context) {
	field := repository.DoctorSearchField(c.Param("field"))
	term := c.Query("q")
	if term == "" {
		term = c.Query(string(field))
	}

	doctors, err := h.service.Search(c.Request.Context(), field, term)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, doctors)
}

func (h *Handler) PaymentQuote(c *gin.Context) {
	option := model.PaymentOption(c.DefaultQuery("option", string(model.PaymentOptionFull)))
	q, err := h.service.PaymentQuote(c.Request.Context(), c.Param("id"), option)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, q)
}
