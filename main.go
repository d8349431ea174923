package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prithvi-path/api-go/config"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/routes"
	"github.com/prithvi-path/api-go/sensors"
	"github.com/prithvi-path/api-go/stories"
	"github.com/prithvi-path/api-go/store"
	"gorm.io/gorm"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	db, locationStore := buildStore()

	ledgers := gamification.NewRegistry()
	storySvc := stories.NewService(locationStore, ledgers)
	monitor := stories.NewMonitor(locationStore, ledgers)

	ctx := context.Background()
	go monitor.Run(ctx, sensors.NewSimulatedPosition(), 15*time.Second)
	go runStepPolling(ctx, ledgers, sensors.NewSimulatedSteps(), 30*time.Second)

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, locationStore, ledgers, storySvc, monitor)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}

// buildStore connects to postgres when configured and wraps it so the
// in-memory dataset answers whenever the database cannot. Without a
// database the API runs entirely on seeded data.
func buildStore() (*gorm.DB, store.LocationStore) {
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Printf("Database unavailable, serving in-memory data: %v", err)
		return nil, store.NewMockStore()
	}

	gormStore := store.NewGormStore(db)
	if err := gormStore.EnsureSeeded(context.Background()); err != nil {
		log.Printf("Seeding failed, serving in-memory data: %v", err)
		return nil, store.NewMockStore()
	}

	return db, store.NewFallbackStore(gormStore, store.NewMockStore())
}

// runStepPolling feeds the simulated step counter into every known
// ledger. Users appear in the registry after their first interaction.
func runStepPolling(ctx context.Context, ledgers *gamification.Registry, steps sensors.StepSource, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			count := steps.Steps(now)
			for _, userID := range ledgers.Users() {
				if awarded := ledgers.ForUser(userID).DailyStepUpdate(count); awarded > 0 {
					log.Printf("step milestone: user=%s steps=%d points=%d", userID, count, awarded)
				}
			}
		}
	}
}
