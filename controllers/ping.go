package controllers

import (
	"Uno/middleware"
	"Uno/services/uno"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Ping the server
// @Description Health check
// @Tags misc
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// authUser reads the id AuthRequired stored in the context
func authUser(c *gin.Context) (string, bool) {
	id, err := middleware.JWT_decoder(c)
	if err != nil {
		_ = c.Error(uno.UnauthorizedError("Access denied. No token provided."))
		return "", false
	}
	return id, true
}

// bindJSON decodes the body, reporting failures as validation errors
func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(uno.ValidationError("%s", message))
		return false
	}
	return true
}

var errMissingParams = uno.ValidationError("Missing required parameters")
