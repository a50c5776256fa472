package handlers

import "github.com/m1z23r/drift/pkg/drift"

// respondError writes the structured error payload every failed call
// returns: a stable machine code plus a human message.
func respondError(c *drift.Context, status int, code, message string) {
	_ = c.JSON(status, map[string]any{
		"code":    code,
		"message": message,
	})
}
