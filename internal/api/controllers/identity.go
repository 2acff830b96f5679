package controllers

import (
	"github.com/gin-gonic/gin"

	"fooding/pkg/middleware"
	"fooding/pkg/utils"
)

// callerEmail returns the authenticated caller or answers 401.
func callerEmail(c *gin.Context) (string, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.Email == "" {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return "", false
	}
	return id.Email, true
}
