package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type OrderStatus string

const (
	ORDER_PENDING   OrderStatus = "pending"
	ORDER_CONFIRMED OrderStatus = "confirmed"
	ORDER_CANCELLED OrderStatus = "cancelled"
)

type AdjustmentStatus string

const (
	ADJUSTMENT_PENDING   AdjustmentStatus = "pending"
	ADJUSTMENT_DONE      AdjustmentStatus = "done"
	ADJUSTMENT_ABANDONED AdjustmentStatus = "abandoned"
)

type AddCartItemRequestBody struct {
	TicketID uuid.UUID `json:"ticket_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequestBody struct {
	// Pointer so a zero quantity binds and gets clamped instead of failing
	// the required check.
	Quantity *int `json:"quantity" binding:"required"`
}

type CheckoutRequestBody struct {
	Name  string `json:"name" binding:"notblank"`
	Email string `json:"email" binding:"required,contactemail"`
	Phone string `json:"phone,omitempty"`
}

type TicketURIParams struct {
	TicketID string `uri:"id" binding:"required"`
}

type EventURIParams struct {
	EventID string `uri:"id" binding:"required"`
}

type OrderNumberURIParams struct {
	Number string `uri:"number" binding:"required"`
}
