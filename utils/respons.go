package utils

import (
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// RespondMessage -> error dengan pesan tetap
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
