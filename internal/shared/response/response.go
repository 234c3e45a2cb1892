package response

import (
	"github.com/gin-gonic/gin"
)

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

// JSON writes data as the whole response body, without the envelope.
// Record endpoints return bare arrays and objects.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error writes the error envelope. The details key is left out when there
// is nothing to report.
func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	body := map[string]interface{}{
		"code":    errorCode,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, ApiEnvelope{
		Ok:    false,
		Data:  nil,
		Error: body,
	})
}
