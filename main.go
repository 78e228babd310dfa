package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Rushikesh1Avachat/food-ordering-mains/configs"
	"github.com/Rushikesh1Avachat/food-ordering-mains/payments"
	"github.com/Rushikesh1Avachat/food-ordering-mains/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)

	r := gin.Default()
	hub := routes.RegisterRoutes(r, cfg, configs.DB(), gateway)
	go hub.Run()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
