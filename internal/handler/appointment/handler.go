package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/totallife/clinical-api/internal/handler"
	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/service/appointment"
)

const entity = "Appointment"

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondInvalidBody(c)
		return
	}

	if messages := h.service.Validate(&req); len(messages) > 0 {
		handler.RespondValidation(c, messages)
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), req.ToAppointment())
	if err != nil {
		handler.Fail(c, entity, "Unable to create appointment", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListAppointments includes clinician and patient names
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		handler.Fail(c, entity, "Unable to fetch appointments", err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	record, err := h.service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Fail(c, entity, "Unable to fetch appointment", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondInvalidBody(c)
		return
	}

	if messages := h.service.Validate(&req); len(messages) > 0 {
		handler.RespondValidation(c, messages)
		return
	}

	updated, err := h.service.UpdateAppointment(c.Request.Context(), c.Param("id"), req.ToAppointment())
	if err != nil {
		handler.Fail(c, entity, "Unable to update appointment", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.service.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		handler.Fail(c, entity, "Unable to delete appointment", err)
		return
	}

	c.Status(http.StatusNoContent)
}
