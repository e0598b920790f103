// Package cart is an explicit client-side cart state container. The storage
// backend is injected through Adapter so it can be browser storage, a file, or
// memory in tests.
package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"naijamart/internal/models"
)

// Adapter reads and writes the serialized cart state.
type Adapter interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// State is the persisted cart shape: the line items plus maintained aggregates.
type State struct {
	Items     []models.CartItem `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"item_count"`
}

// Store holds the shopper's cart and keeps the persisted copy in sync on every
// mutation. Totals are maintained incrementally, never accepted from outside.
type Store struct {
	mu      sync.Mutex
	adapter Adapter
	state   State
}

// NewStore creates a Store backed by adapter, loading any previously saved
// state. An empty or missing persisted state yields an empty cart.
func NewStore(adapter Adapter) (*Store, error) {
	s := &Store{adapter: adapter}

	data, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart state: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.state); err != nil {
			return nil, fmt.Errorf("failed to decode cart state: %w", err)
		}
	}
	return s, nil
}

// Add puts a product line into the cart, merging quantities when the product is
// already present. unitPrice is the customer price at the time of adding.
func (s *Store) Add(productID, sellerID string, quantity int, unitPrice int64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ProductID == productID {
			s.state.Items[i].Quantity += quantity
			s.state.Items[i].UnitPrice = unitPrice
			s.state.Items[i].LineTotal = unitPrice * int64(s.state.Items[i].Quantity)
			s.recalculate()
			return s.persist()
		}
	}

	s.state.Items = append(s.state.Items, models.CartItem{
		ProductID: productID,
		SellerID:  sellerID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice * int64(quantity),
	})
	s.recalculate()
	return s.persist()
}

// SetQuantity replaces the quantity of an existing line; zero removes it.
func (s *Store) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ProductID == productID {
			if quantity == 0 {
				s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			} else {
				s.state.Items[i].Quantity = quantity
				s.state.Items[i].LineTotal = s.state.Items[i].UnitPrice * int64(quantity)
			}
			s.recalculate()
			return s.persist()
		}
	}
	return fmt.Errorf("product %s is not in the cart", productID)
}

// Remove deletes a product line from the cart.
func (s *Store) Remove(productID string) error {
	return s.SetQuantity(productID, 0)
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	return s.persist()
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

// Snapshot returns a copy of the full cart state including aggregates.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Items = make([]models.CartItem, len(s.state.Items))
	copy(snap.Items, s.state.Items)
	return snap
}

// recalculate rebuilds Total and ItemCount from the lines. Caller holds mu.
func (s *Store) recalculate() {
	var total int64
	var count int
	for _, item := range s.state.Items {
		total += item.LineTotal
		count += item.Quantity
	}
	s.state.Total = total
	s.state.ItemCount = count
}

// persist writes the state through the adapter. Caller holds mu.
func (s *Store) persist() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to encode cart state: %w", err)
	}
	if err := s.adapter.Save(data); err != nil {
		return fmt.Errorf("failed to save cart state: %w", err)
	}
	return nil
}
