package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerMessageRoutes(api fiber.Router, mh *handler.MessageHandler) {
	messages := api.Group("/messages")

	messages.Get("/", mh.List)
	messages.Post("/", mh.Send)
	messages.Get("/:id", mh.GetByID)
}
