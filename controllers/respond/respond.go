// Package respond defines the JSON envelope every endpoint answers with.
// Failures carry a stable machine-checkable kind next to the human message.
package respond

import "github.com/gin-gonic/gin"

const (
	KindValidation        = "validation_failed"
	KindUnauthenticated   = "unauthenticated"
	KindForbidden         = "forbidden"
	KindNotFound          = "not_found"
	KindInsufficientStock = "insufficient_stock"
	KindConflict          = "conflict"
	KindInternal          = "internal"
)

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Ack is a success response that only carries a message.
func Ack(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func Fail(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"success": false, "kind": kind, "message": message})
}

// AbortFail is Fail for middleware: it also stops the handler chain.
func AbortFail(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "kind": kind, "message": message})
}

// FailStock reports an insufficient-stock conflict and tells the caller how
// much is actually available, so the client can clamp and retry.
func FailStock(c *gin.Context, status int, available int, message string) {
	c.JSON(status, gin.H{
		"success":   false,
		"kind":      KindInsufficientStock,
		"message":   message,
		"available": available,
	})
}
