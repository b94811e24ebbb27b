package clinician

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/totallife/clinical-api/internal/handler"
	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/service/clinician"
)

const entity = "Clinician"

type Handler struct {
	service clinician.Service
}

func NewHandler(service clinician.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	clinicians := r.Group("/clinicians")
	{
		clinicians.POST("", h.CreateClinician)
		clinicians.GET("", h.ListClinicians)
		clinicians.GET("/:id", h.GetClinician)
		clinicians.PUT("/:id", h.UpdateClinician)
		clinicians.DELETE("/:id", h.DeleteClinician)
	}
}

func (h *Handler) CreateClinician(c *gin.Context) {
	var req model.ClinicianInput
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondInvalidBody(c)
		return
	}

	record := model.NewClinician(&req)
	if !h.validate(c, record, "Unable to create clinician") {
		return
	}

	created, err := h.service.Create(c.Request.Context(), record)
	if err != nil {
		handler.Fail(c, entity, "Unable to create clinician", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListClinicians(c *gin.Context) {
	clinicians, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Fail(c, entity, "Unable to fetch clinicians", err)
		return
	}

	c.JSON(http.StatusOK, clinicians)
}

func (h *Handler) GetClinician(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Fail(c, entity, "Unable to fetch clinician", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateClinician accepts a partial body. The stored record is overlaid
// with it and the result must pass the same checks as a new clinician.
func (h *Handler) UpdateClinician(c *gin.Context) {
	var req model.ClinicianInput
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondInvalidBody(c)
		return
	}

	id := c.Param("id")
	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, entity, "Unable to update clinician", err)
		return
	}

	record.Apply(&req)
	if !h.validate(c, record, "Unable to update clinician") {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, record)
	if err != nil {
		handler.Fail(c, entity, "Unable to update clinician", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteClinician(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.Fail(c, entity, "Unable to delete clinician", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// validate writes the response and returns false when record cannot be
// saved
func (h *Handler) validate(c *gin.Context, record *model.Clinician, failure string) bool {
	messages, err := h.service.Validate(c.Request.Context(), record)
	if err != nil {
		handler.Fail(c, entity, failure, err)
		return false
	}
	if len(messages) > 0 {
		handler.RespondValidation(c, messages)
		return false
	}
	return true
}
