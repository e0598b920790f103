package handlers

import (
	"log"

	"naijamart/pkg/imagestore"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles product image upload and deletion, delegating the
// actual storage to an imagestore.Store.
type UploadHandler struct {
	store imagestore.Store
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store imagestore.Store) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	uploadRoutes := router.Group("/upload")
	uploadRoutes.Post("/image", h.HandleUploadImage)
	uploadRoutes.Delete("/image/:publicId", h.HandleDeleteImage)
}

// HandleUploadImage stores a product image from a multipart form field named
// "image" and returns its public ID and URL.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "An 'image' file field is required",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Could not read uploaded file",
		})
	}
	defer f.Close()

	image, err := h.store.Save(fileHeader.Filename, f)
	if err != nil {
		log.Printf("Error storing image %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    image,
	})
}

// HandleDeleteImage removes a stored image by its public ID.
func (h *UploadHandler) HandleDeleteImage(c *fiber.Ctx) error {
	publicID := c.Params("publicId")

	if err := h.store.Delete(publicID); err != nil {
		log.Printf("Error deleting image %s: %v", publicID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Could not delete image",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"public_id": publicID},
	})
}
