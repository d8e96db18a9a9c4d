package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ordersdesk.com/app/internal/config"
	"ordersdesk.com/app/internal/modules/orders"
)

const errDuplicateEntry = 1062

func main() {
	n := flag.Int("n", 25, "number of demo orders")
	flag.Parse()

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

	repo := orders.NewRepo(db)
	ctx := context.Background()
	products := []orders.CreateItem{
		{Title: "Classic Tee", SKU: "TEE-001", UnitPriceCents: 2500},
		{Title: "Hoodie", SKU: "HOOD-002", UnitPriceCents: 5900},
		{Title: "Cap", SKU: "CAP-003", UnitPriceCents: 1800},
	}

	created := 0
	for i := 0; i < *n; i++ {
		in := orders.CreateInput{
			Email:             fmt.Sprintf("customer%02d@example.com", i+1),
			Status:            pick(orders.Statuses[:3]),
			FulfillmentStatus: pick(orders.FulfillmentStatuses[:3]),
			PaymentStatus:     pick(orders.PaymentStatuses[1:4]),
		}
		for j := 0; j <= rand.IntN(3); j++ {
			it := products[rand.IntN(len(products))]
			it.Quantity = 1 + rand.IntN(3)
			in.Items = append(in.Items, it)
		}

		if _, err := repo.Create(ctx, in); err != nil {
			var me *mysqldrv.MySQLError
			if errors.As(err, &me) && me.Number == errDuplicateEntry {
				// a concurrent seeder took the display id; skip
				continue
			}
			log.Fatalf("Failed to create order: %v", err)
		}
		created++
	}
	log.Printf("✓ %d demo orders created", created)
}

func pick(vals []string) string { return vals[rand.IntN(len(vals))] }
