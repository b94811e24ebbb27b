package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/totallife/clinical-api/internal/handler"
	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/service/patient"
)

const entity = "Patient"

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondInvalidBody(c)
		return
	}

	if messages := h.service.Validate(&req); len(messages) > 0 {
		handler.RespondValidation(c, messages)
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), req.ToPatient())
	if err != nil {
		handler.Fail(c, entity, "Unable to create patient", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		handler.Fail(c, entity, "Unable to fetch patients", err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	record, err := h.service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Fail(c, entity, "Unable to fetch patient", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var req model.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondInvalidBody(c)
		return
	}

	if messages := h.service.Validate(&req); len(messages) > 0 {
		handler.RespondValidation(c, messages)
		return
	}

	updated, err := h.service.UpdatePatient(c.Request.Context(), c.Param("id"), req.ToPatient())
	if err != nil {
		handler.Fail(c, entity, "Unable to update patient", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.service.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		handler.Fail(c, entity, "Unable to delete patient", err)
		return
	}

	c.Status(http.StatusNoContent)
}
