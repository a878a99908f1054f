package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrimeCutStudio/salon-booking/internal/config"
	dbpkg "github.com/PrimeCutStudio/salon-booking/internal/db"
	"github.com/PrimeCutStudio/salon-booking/internal/middleware"
	"github.com/PrimeCutStudio/salon-booking/internal/payments"
	"github.com/PrimeCutStudio/salon-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	mp, err := payments.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Fatalf("failed to configure payment client: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, mp)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
