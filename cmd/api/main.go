package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/mariananails/salon-booking/internal/config"
	dbpkg "github.com/mariananails/salon-booking/internal/db"
	"github.com/mariananails/salon-booking/internal/logging"
	"github.com/mariananails/salon-booking/internal/middleware"
	"github.com/mariananails/salon-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(os.Getenv("LOG_LEVEL"))

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
