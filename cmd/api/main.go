package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barberclubbr/barberclub-api/internal/cache"
	"github.com/barberclubbr/barberclub-api/internal/config"
	dbpkg "github.com/barberclubbr/barberclub-api/internal/db"
	"github.com/barberclubbr/barberclub-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.New(cfg)

	r := gin.Default()

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
