package main

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ordersdesk.com/app/internal/config"
	"ordersdesk.com/app/internal/modules/orders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	mc, err := config.ParseDSN(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(mysql.Open(mc.FormatDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orders.Order{}, &orders.OrderItem{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	log.Println("✓ orders and order_items migrated")
}
