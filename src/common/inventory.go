package common

import (
	"errors"
	"log"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("not enough remaining tickets")

const maxAdjustmentAttempts = 5

// DecrementAvailableQuantity reduces a ticket category's remaining count by
// the purchased amount in one guarded UPDATE. The counter never goes below
// zero: when remaining stock is short the statement matches no row and
// ErrInsufficientStock is returned.
func DecrementAvailableQuantity(tx *gorm.DB, ticketID uuid.UUID, amount int) error {
	res := tx.
		Model(&models.TicketCategory{}).
		Where("id = ? AND available_quantity >= ?", ticketID, amount).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// QueueInventoryAdjustment records a decrement that did not land so the
// scheduler can reconcile it later. Queueing is itself best-effort: a failure
// here is logged and dropped rather than surfaced to the shopper.
func QueueInventoryAdjustment(orderNumber string, ticketID uuid.UUID, amount int, cause error) {
	msg := cause.Error()
	adjustment := models.InventoryAdjustment{
		TicketCategoryID: ticketID,
		OrderNumber:      orderNumber,
		Amount:           amount,
		Status:           types.ADJUSTMENT_PENDING,
		Attempts:         1,
		LastError:        &msg,
	}
	db := db.GetDb()
	if err := db.Create(&adjustment).Error; err != nil {
		log.Printf("Error queueing inventory adjustment for ticket %s: %s\n", ticketID, err.Error())
	}
}

// RetryPendingInventoryAdjustments is the scheduler task draining the outbox.
// Rows that keep failing past the attempt budget are marked abandoned for
// back-office review.
func RetryPendingInventoryAdjustments() {
	var pending []models.InventoryAdjustment
	db := db.GetDb()
	err := db.
		Model(&models.InventoryAdjustment{}).
		Where(&models.InventoryAdjustment{Status: types.ADJUSTMENT_PENDING}).
		Order("created_at asc").
		Limit(100).
		Find(&pending).
		Error
	if err != nil {
		log.Printf("Error loading pending inventory adjustments: %s\n", err.Error())
		return
	}
	for _, adjustment := range pending {
		derr := DecrementAvailableQuantity(db, adjustment.TicketCategoryID, adjustment.Amount)
		updates := models.InventoryAdjustment{Attempts: adjustment.Attempts + 1}
		if derr == nil {
			updates.Status = types.ADJUSTMENT_DONE
		} else {
			msg := derr.Error()
			updates.LastError = &msg
			if updates.Attempts >= maxAdjustmentAttempts {
				updates.Status = types.ADJUSTMENT_ABANDONED
			}
		}
		if err := db.
			Model(&models.InventoryAdjustment{}).
			Where("id = ?", adjustment.ID).
			Updates(&updates).
			Error; err != nil {
			log.Printf("Error updating inventory adjustment %d: %s\n", adjustment.ID, err.Error())
		}
		if derr == nil {
			InvalidateEventsCache()
		}
	}
}
