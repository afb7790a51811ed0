// Package response renders the one envelope every PrimeDrew endpoint
// speaks: {"success":true,"data":...} on the happy path, or
// {"success":false,"error":{...}} with a stable machine code otherwise.
package response

import "github.com/gin-gonic/gin"

// Body is the error half of the envelope. Code is a stable string the
// frontend switches on; Details carries identifiers worth quoting back
// to support, such as a gateway payment id.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"success": false, "error": Body{Code: code, Message: message}})
}

// ErrorWithDetails is Error with a structured payload attached, for
// failures where the user needs an identifier for follow-up.
func ErrorWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{"success": false, "error": Body{Code: code, Message: message, Details: details}})
}
