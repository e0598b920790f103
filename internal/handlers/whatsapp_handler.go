package handlers

import (
	"log"

	"naijamart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WhatsAppHandler serves the per-seller messaging deep links for an order.
type WhatsAppHandler struct {
	service *services.WhatsAppService
}

// NewWhatsAppHandler creates a new WhatsAppHandler.
func NewWhatsAppHandler(service *services.WhatsAppService) *WhatsAppHandler {
	return &WhatsAppHandler{
		service: service,
	}
}

// RegisterRoutes registers the WhatsApp routes with the Fiber app.
func (h *WhatsAppHandler) RegisterRoutes(router fiber.Router) {
	whatsappRoutes := router.Group("/whatsapp")
	whatsappRoutes.Get("/orders/:orderId", h.HandleGetOrderLinks)
}

// HandleGetOrderLinks regenerates the messaging links for an order, one per
// seller with items in it. An unknown order returns an empty list.
func (h *WhatsAppHandler) HandleGetOrderLinks(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	links, err := h.service.BuildMessagingLinks(orderID)
	if err != nil {
		log.Printf("Error building messaging links for order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not build messaging links",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    links,
	})
}
