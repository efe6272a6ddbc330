package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 response with the payload as the body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload as the body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends an error JSON response with a human-readable message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}
