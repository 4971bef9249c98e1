package main

import (
	"context"
	"field-schedule-service/internal/adapters/cache"
	"field-schedule-service/internal/adapters/repositories"
	"field-schedule-service/internal/api"
	"field-schedule-service/internal/api/handlers"
	"field-schedule-service/internal/config"
	"field-schedule-service/internal/domain"
	"field-schedule-service/internal/metrics"
	"field-schedule-service/internal/platform/db"
	"field-schedule-service/internal/ports"
	"field-schedule-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or seed file, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	policy, err := config.LoadCostPolicy(config.Get("COST_POLICY_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	defaults, err := loadStartDefaults()
	if err != nil {
		log.Fatal(err)
	}

	limiter, err := loadLimiter()
	if err != nil {
		log.Fatal(err)
	}

	repo, closeRepo, err := openRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	scheduleCache, closeCache, err := openCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	metrics.RegisterDefault()

	planner := services.NewPlanner(repo, scheduleCache, policy)
	router := api.NewRouter(repo, planner, defaults, limiter)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository prefers Postgres and falls back to the JSON seed file for local runs.
func openRepository() (ports.JobRepository, func(), error) {
	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		seedPath := config.Get("SEED_PATH", "data/seeds/jobs.json")
		repo, err := repositories.NewMemoryJobRepositoryFromFile(seedPath)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("job repository=memory seed=%s", seedPath)
		return repo, func() {}, nil
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Println("job repository=postgres")
	return repositories.NewPostgresJobRepository(conn), func() { _ = conn.Close() }, nil
}

// openCache returns a nil cache when REDIS_URL is unset; the planner then always optimizes.
func openCache() (ports.ScheduleCache, func(), error) {
	redisURL := config.Get("REDIS_URL", "")
	if redisURL == "" {
		log.Println("schedule cache=disabled")
		return nil, func() {}, nil
	}

	ttl, err := config.GetDuration("SCHEDULE_CACHE_TTL", 15*time.Minute)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := cache.NewRedisScheduleCacheFromURL(ctx, redisURL, ttl)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("schedule cache=redis ttl=%s", ttl)
	return c, func() { _ = c.Close() }, nil
}

func loadStartDefaults() (handlers.StartDefaults, error) {
	lat, err := config.GetFloat("START_LAT", services.DemoStart.Lat)
	if err != nil {
		return handlers.StartDefaults{}, err
	}
	lng, err := config.GetFloat("START_LNG", services.DemoStart.Lng)
	if err != nil {
		return handlers.StartDefaults{}, err
	}

	d := handlers.StartDefaults{
		Location:  domain.Coordinates{Lat: lat, Lng: lng},
		StartTime: config.Get("START_TIME", services.DefaultStartTime),
	}
	if err := d.Location.Validate(); err != nil {
		return handlers.StartDefaults{}, fmt.Errorf("start defaults: %w", err)
	}
	if _, err := domain.ParseClock(d.StartTime); err != nil {
		return handlers.StartDefaults{}, fmt.Errorf("start defaults: %w", err)
	}
	return d, nil
}

// loadLimiter returns nil (no limiting) when RATE_LIMIT_RPS is 0.
func loadLimiter() (*rate.Limiter, error) {
	rps, err := config.GetFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	burst, err := config.GetInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	if rps <= 0 {
		return nil, nil
	}
	return rate.NewLimiter(rate.Limit(rps), burst), nil
}
