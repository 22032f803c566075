package common

import "github.com/gin-gonic/gin"

// OK writes the success envelope. data may be nil for message-only responses.
func OK(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Fail writes the error envelope {success:false, message}.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
