package models

import (
	"tbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem is created in a batch alongside its Order and immutable afterward.
type OrderItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	OrderID          uuid.UUID `gorm:"type:uuid" json:"order_id,omitempty"`
	TicketCategoryID uuid.UUID `gorm:"type:uuid" json:"ticket_category_id,omitempty"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unit_price"`
	Subtotal         float64   `json:"subtotal"`

	TicketCategory TicketCategory `gorm:"foreignKey:ticket_category_id" json:"ticket_category,omitempty"`

	types.Timestamps
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
