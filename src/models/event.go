package models

import (
	"tbs/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID    uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	City  string    `json:"city,omitempty"`
	Venue string    `json:"venue,omitempty"`
	Date  time.Time `json:"date,omitempty"`

	TicketCategories []TicketCategory `gorm:"foreignKey:event_id" json:"ticket_categories,omitempty"`

	types.Timestamps
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
