package services

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"naijamart/internal/models"
	"naijamart/internal/repositories"
)

// WhatsAppService builds per-seller WhatsApp deep links for paid orders.
// Links are derived data, regenerated on every request and never stored.
type WhatsAppService struct {
	orderRepo repositories.OrderRepository
	adminRepo repositories.AdminRepository
}

// NewWhatsAppService creates a new WhatsAppService.
func NewWhatsAppService(orderRepo repositories.OrderRepository, adminRepo repositories.AdminRepository) *WhatsAppService {
	return &WhatsAppService{
		orderRepo: orderRepo,
		adminRepo: adminRepo,
	}
}

// BuildMessagingLinks groups the order's line items by seller and composes one
// pre-filled wa.me link per seller, covering only that seller's items.
// An unknown order yields an empty list, not an error.
func (s *WhatsAppService) BuildMessagingLinks(orderID string) ([]models.SellerLink, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []models.SellerLink{}, nil
		}
		return nil, err
	}

	// Group items per seller, keeping first-seen seller order stable.
	var sellerIDs []string
	grouped := make(map[string][]models.OrderItem)
	for _, item := range order.Items {
		if _, seen := grouped[item.SellerID]; !seen {
			sellerIDs = append(sellerIDs, item.SellerID)
		}
		grouped[item.SellerID] = append(grouped[item.SellerID], item)
	}

	links := make([]models.SellerLink, 0, len(sellerIDs))
	for _, sellerID := range sellerIDs {
		admin, err := s.adminRepo.GetByID(sellerID)
		if err != nil {
			// A seller account that vanished should not sink the whole order.
			log.Printf("Skipping messaging link for seller %s on order %s: %v", sellerID, orderID, err)
			continue
		}

		links = append(links, models.SellerLink{
			SellerID:     sellerID,
			BusinessName: admin.BusinessName,
			Phone:        admin.Phone,
			Link:         buildLink(admin.Phone, composeMessage(order, grouped[sellerID])),
		})
	}
	return links, nil
}

// composeMessage renders the pre-filled text for one seller's share of an order.
func composeMessage(order *models.Order, items []models.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", order.PaymentReference)
	var subtotal int64
	for _, item := range items {
		fmt.Fprintf(&b, "%dx %s - ₦%d\n", item.Quantity, item.ProductName, item.LineTotal)
		subtotal += item.LineTotal
	}
	fmt.Fprintf(&b, "Subtotal: ₦%d\n", subtotal)
	fmt.Fprintf(&b, "Deliver to: %s, %s, %s, %s, %s\n", order.CustomerName, order.Street, order.City, order.State, order.Country)
	fmt.Fprintf(&b, "Customer phone: %s", order.CustomerPhone)
	return b.String()
}

// buildLink forms a wa.me deep link with the message URL-encoded.
func buildLink(phone, message string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + url.QueryEscape(message)
}

// NormalizePhone strips formatting from a Nigerian phone number and converts a
// local leading 0 into the 234 country code, the form wa.me expects.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()
	if strings.HasPrefix(n, "0") {
		n = "234" + n[1:]
	}
	return n
}
