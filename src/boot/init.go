package boot

import (
	"log"
	"tbs/src/cart"
	"tbs/src/common"
	"tbs/src/db"
	"tbs/src/lib"
	"tbs/src/models"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Event{},
		&models.TicketCategory{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryAdjustment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

const cartTTL = 12 * time.Hour

func InitScheduler(carts *cart.Manager) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateCronJob(common.RetryPendingInventoryAdjustments, time.Minute); err != nil {
		log.Printf("Error scheduling inventory reconciliation: %s\n", err.Error())
	}
	if _, err := lib.CreateCronJob(func() {
		if evicted := carts.Sweep(cartTTL); evicted > 0 {
			log.Printf("Evicted %d idle carts\n", evicted)
		}
	}, 15*time.Minute); err != nil {
		log.Printf("Error scheduling cart sweep: %s\n", err.Error())
	}
	sched.Start()
	log.Println("Jobs in queue:", len(sched.Jobs()))
}
