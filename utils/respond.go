package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error body every controller uses.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
