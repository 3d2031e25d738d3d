package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// LineItem pairs a ticket category with a requested quantity, plus the display
// fields and availability snapshot captured when the shopper added it.
type LineItem struct {
	TicketID          uuid.UUID `json:"ticket_id"`
	EventID           uuid.UUID `json:"event_id"`
	City              string    `json:"city"`
	Venue             string    `json:"venue"`
	Date              time.Time `json:"date"`
	CategoryName      string    `json:"category_name"`
	Price             float64   `json:"price"`
	Quantity          int       `json:"quantity"`
	AvailableQuantity int       `json:"available_quantity"`
}

// Cart holds one shopper's in-progress selection: an ordered collection of
// line items with at most one line per ticket category. Every stored quantity
// stays within [1, AvailableQuantity]; out-of-range requests are clamped,
// never rejected. Mutations are applied one at a time under the cart's lock.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

func clampQuantity(qty, available int) int {
	if qty < 1 {
		qty = 1
	}
	if qty > available {
		qty = available
	}
	return qty
}

// Add merges into an existing line for the same ticket category, capping the
// summed quantity at the availability snapshot of the line already in the
// cart. The incoming snapshot is ignored on merge, so a stale availability
// captured by the first add keeps winning even if stock changed mid-session.
func (c *Cart) Add(item LineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].TicketID == item.TicketID {
			c.items[i].Quantity = clampQuantity(c.items[i].Quantity+item.Quantity, c.items[i].AvailableQuantity)
			return
		}
	}
	item.Quantity = clampQuantity(item.Quantity, item.AvailableQuantity)
	c.items = append(c.items, item)
}

// Remove drops the matching line if present; removing an absent ticket is a
// no-op.
func (c *Cart) Remove(ticketID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].TicketID == ticketID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity clamps to [1, AvailableQuantity] and leaves the cart unchanged
// when the ticket is not in it.
func (c *Cart) SetQuantity(ticketID uuid.UUID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].TicketID == ticketID {
			c.items[i].Quantity = clampQuantity(quantity, c.items[i].AvailableQuantity)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy so callers can iterate without holding the lock.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]LineItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}
