package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/totallife/clinical-api/internal/repository"
	apperrors "github.com/totallife/clinical-api/pkg/errors"
)

// MsgInvalidBody is reported when the body is not a decodable JSON object
const MsgInvalidBody = "invalid request body"

// ValidationResponse lists every reason a payload was rejected
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

func RespondValidation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, ValidationResponse{Errors: messages})
}

func RespondInvalidBody(c *gin.Context) {
	RespondValidation(c, []string{MsgInvalidBody})
}

// Fail hands err to the error middleware. A missing record becomes a 404
// naming entity; anything else is a 500 carrying message.
func Fail(c *gin.Context, entity, message string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		_ = c.Error(apperrors.NotFound(entity, err))
		return
	}
	_ = c.Error(apperrors.Internal(message, err))
}
