package models

import (
	"tbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID            uuid.UUID         `gorm:"type:uuid;primarykey" json:"id"`
	OrderNumber   string            `gorm:"uniqueIndex" json:"order_number,omitempty"`
	CustomerName  string            `json:"customer_name,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	CustomerPhone *string           `json:"customer_phone,omitempty"`
	TotalAmount   float64           `json:"total_amount"`
	Status        types.OrderStatus `gorm:"default:'pending'" json:"status,omitempty"`

	Items []OrderItem `gorm:"foreignKey:order_id" json:"items,omitempty"`

	types.Timestamps
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
