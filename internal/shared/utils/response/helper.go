package response

import (
	"aerobook/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError maps a classified service error to its HTTP status and
// writes the standard error envelope.
func RespondError(c *gin.Context, message string, err error) {
	code := apperrors.HTTPStatus(err)
	RespondJSON(c, "error", code, message, nil, gin.H{
		"kind":    apperrors.KindOf(err).String(),
		"details": err.Error(),
	})
}
