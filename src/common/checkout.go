package common

import (
	"errors"
	"log"
	"strings"
	"tbs/src/cart"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"

	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// SubmitOrder turns a cart snapshot into a durable order. The order row and
// its items are written in a single transaction, so a failed item insert
// leaves no orphaned order behind. Inventory decrements run after commit and
// never fail the checkout: a shortfall or store error is logged and queued for
// reconciliation. Prices and availability are taken from the snapshot as-is;
// staleness between add-to-cart and submit is accepted.
//
// The caller keeps the cart: it must clear it only when SubmitOrder succeeds.
func SubmitOrder(body *types.CheckoutRequestBody, items []cart.LineItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	var phone *string
	if p := strings.TrimSpace(body.Phone); p != "" {
		phone = &p
	}

	order := models.Order{
		OrderNumber:   utils.GenerateOrderNumber(),
		CustomerName:  strings.TrimSpace(body.Name),
		CustomerEmail: strings.TrimSpace(body.Email),
		CustomerPhone: phone,
		TotalAmount:   total,
		Status:        types.ORDER_PENDING,
	}

	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:          order.ID,
				TicketCategoryID: item.TicketID,
				Quantity:         item.Quantity,
				UnitPrice:        item.Price,
				Subtotal:         item.Price * float64(item.Quantity),
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating order %s: %s\n", order.OrderNumber, err.Error())
		return "", err
	}

	for _, item := range items {
		if err := DecrementAvailableQuantity(db, item.TicketID, item.Quantity); err != nil {
			log.Printf("Error updating quantity for ticket %s: %s\n", item.TicketID, err.Error())
			QueueInventoryAdjustment(order.OrderNumber, item.TicketID, item.Quantity, err)
		}
	}
	InvalidateEventsCache()

	go func() {
		if err := SendOrderAcknowledgment(&order, items); err != nil {
			log.Printf("Could not send acknowledgment email for order %s: %s\n", order.OrderNumber, err.Error())
		}
	}()

	return order.OrderNumber, nil
}
