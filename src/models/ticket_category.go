package models

import (
	"tbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketCategory is a priced class of admission for one event with a finite
// remaining count. The storefront never creates or deletes rows here; the only
// mutation it performs is the atomic decrement of available_quantity.
type TicketCategory struct {
	ID                uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	EventID           uuid.UUID `gorm:"type:uuid" json:"event_id,omitempty"`
	CategoryName      string    `json:"category_name,omitempty"`
	Price             float64   `json:"price"`
	AvailableQuantity int       `gorm:"check:available_quantity >= 0" json:"available_quantity"`

	Event Event `gorm:"foreignKey:event_id" json:"event,omitempty"`

	types.Timestamps
}

func (t *TicketCategory) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
