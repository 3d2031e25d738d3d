package models

import (
	"tbs/src/types"

	"github.com/google/uuid"
)

// InventoryAdjustment is the durable record of a decrement that could not be
// applied during checkout. A scheduler job retries pending rows until the
// decrement lands or the attempt budget runs out.
type InventoryAdjustment struct {
	ID               uint                   `gorm:"primarykey" json:"id"`
	TicketCategoryID uuid.UUID              `gorm:"type:uuid" json:"ticket_category_id,omitempty"`
	OrderNumber      string                 `json:"order_number,omitempty"`
	Amount           int                    `json:"amount"`
	Status           types.AdjustmentStatus `gorm:"default:'pending'" json:"status,omitempty"`
	Attempts         int                    `json:"attempts"`
	LastError        *string                `json:"last_error,omitempty"`

	types.Timestamps
}
