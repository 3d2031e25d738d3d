package common

import (
	"context"
	"encoding/json"
	"log"
	"tbs/src/db"
	"tbs/src/lib"
	"tbs/src/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const eventsCacheKey = "catalog:events"

// Availability moves with every checkout, so the cached catalog is short-lived.
const eventsCacheTTL = 60 * time.Second

// ListEvents returns the full catalog sorted by event date ascending, each
// event carrying its ticket categories.
func ListEvents() ([]models.Event, error) {
	if rd := lib.GetRedisClient(); rd != nil {
		val := rd.Get(context.Background(), eventsCacheKey).Val()
		if val != "" {
			var cached []models.Event
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
			log.Printf("[catalog] Error decoding cached events, falling back to store")
		}
	}

	var events []models.Event
	db := db.GetDb()
	err := db.
		Model(&models.Event{}).
		Preload("TicketCategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("price asc")
		}).
		Order("date asc").
		Find(&events).
		Error
	if err != nil {
		return nil, err
	}

	if rd := lib.GetRedisClient(); rd != nil {
		if encoded, err := json.Marshal(&events); err == nil {
			rd.SetEx(context.Background(), eventsCacheKey, string(encoded), eventsCacheTTL)
		}
	}
	return events, nil
}

func GetEvent(eventID uuid.UUID) (*models.Event, error) {
	var event models.Event
	db := db.GetDb()
	err := db.
		Model(&models.Event{}).
		Where(&models.Event{ID: eventID}).
		Preload("TicketCategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("price asc")
		}).
		First(&event).
		Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetOrderByNumber re-fetches a persisted order for the confirmation view,
// items nested with their ticket category and event.
func GetOrderByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	db := db.GetDb()
	err := db.
		Model(&models.Order{}).
		Where(&models.Order{OrderNumber: orderNumber}).
		Preload("Items").
		Preload("Items.TicketCategory").
		Preload("Items.TicketCategory.Event").
		First(&order).
		Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func InvalidateEventsCache() {
	if rd := lib.GetRedisClient(); rd != nil {
		rd.Del(context.Background(), eventsCacheKey)
	}
}
