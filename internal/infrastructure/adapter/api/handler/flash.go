package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// flashCategories are the keys flashes are stored under in the session
var flashCategories = []string{"success", "danger"}

// addFlash queues a one-shot message for the next rendered page
func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

// takeFlashes drains queued flash messages for rendering
func takeFlashes(c *gin.Context) []dto.Flash {
	session := sessions.Default(c)

	var flashes []dto.Flash
	for _, category := range flashCategories {
		for _, f := range session.Flashes(category) {
			if message, ok := f.(string); ok {
				flashes = append(flashes, dto.Flash{Category: category, Message: message})
			}
		}
	}
	_ = session.Save()

	return flashes
}
