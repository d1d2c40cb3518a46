package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doctor-channel/internal/middleware"
	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/service/appointment"
	"github.com/jwalitptl/doctor-channel/internal/session"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/httputil"
)

var errNotOwner = errors.New("appointment belongs to another user")

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", auth.RequireAuth(), h.CreateAppointment)
		appointments.GET("", auth.RequireAdmin(), h.ListAppointments)
		appointments.GET("/:id", auth.RequireAuth(), h.GetAppointment)
		appointments.GET("/user/:userId", auth.RequireAuth(), h.ListByUser)
		appointments.GET("/doctor/:doctorId", auth.RequireAdmin(), h.ListByDoctor)
		appointments.PUT("/:id/status", auth.RequireAdmin(), h.UpdateStatus)
		appointments.PUT("/:id/payment-status", auth.RequireAdmin(), h.UpdatePaymentStatus)
		appointments.DELETE("/:id", auth.RequireAdmin(), h.DeleteAppointment)
	}
}

// CreateAppointment books on behalf of the caller. A missing userId is taken
// from the session; only admins may book for someone else.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, httputil.BindError(err))
		return
	}

	sess, _ := session.FromContext(c.Request.Context())
	if req.UserID == "" {
		req.UserID = sess.UserID
	} else if !sess.CanAccessUser(req.UserID) {
		httputil.RespondWithError(c, apperrors.Forbidden(errNotOwner))
		return
	}

	a, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, a)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	a, err := h.service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	sess, _ := session.FromContext(c.Request.Context())
	if !sess.CanAccessUser(a.UserID) {
		httputil.RespondWithError(c, apperrors.Forbidden(errNotOwner))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, a)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appointments)
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	sess, _ := session.FromContext(c.Request.Context())
	if !sess.CanAccessUser(userID) {
		httputil.RespondWithError(c, apperrors.Forbidden(errNotOwner))
		return
	}

	appointments, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appointments)
}

func (h *Handler) ListByDoctor(c *gin.Context) {
	appointments, err := h.service.ListByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appointments)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	status := model.AppointmentStatus(c.Query("status"))
	a, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, a)
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	status := model.PaymentStatus(c.Query("paymentStatus"))
	a, err := h.service.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.service.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
