package handlers

import (
	"errors"
	"log"

	"naijamart/internal/models"
	"naijamart/internal/repositories"
	"naijamart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for product listings.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers product routes. Catalog reads are public so the
// storefront can browse without a token; writes require a seller JWT.
func (h *ProductHandler) RegisterRoutes(public fiber.Router, protected fiber.Router) {
	publicRoutes := public.Group("/products")
	publicRoutes.Get("/", h.HandleGetProducts)
	publicRoutes.Get("/:id", h.HandleGetProductByID)

	protectedRoutes := protected.Group("/products")
	protectedRoutes.Post("/", h.HandleCreateProduct)
	protectedRoutes.Put("/:id", h.HandleUpdateProduct)
	protectedRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves the catalog, optionally filtered by seller.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	sellerID := c.Query("seller_id")

	var products []models.Product
	var err error
	if sellerID != "" {
		products, err = h.service.GetProductsBySeller(sellerID)
	} else {
		products, err = h.service.GetAllProducts()
	}
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve products",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleCreateProduct creates a listing for the authenticated seller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErrorMessage(err),
		})
	}

	sellerID, _ := c.Locals("admin_id").(string)
	if err := h.service.CreateProduct(sellerID, &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// UpdateProductRequest is the request body for a product update. Active is a
// pointer so that omitting the field keeps the stored value; only an explicit
// false delists the product.
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	AdminPrice  int64  `json:"admin_price" validate:"gte=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Active      *bool  `json:"active"`
}

// HandleUpdateProduct updates a listing owned by the authenticated seller.
// The customer price in the response reflects the re-derived platform fee.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErrorMessage(err),
		})
	}

	product := models.Product{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		AdminPrice:  req.AdminPrice,
		Stock:       req.Stock,
	}

	sellerID, _ := c.Locals("admin_id").(string)
	if err := h.service.UpdateProduct(sellerID, &product, req.Active); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not update product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleDeleteProduct removes a listing owned by the authenticated seller.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	sellerID, _ := c.Locals("admin_id").(string)

	if err := h.service.DeleteProduct(sellerID, productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not delete product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": productID},
	})
}
