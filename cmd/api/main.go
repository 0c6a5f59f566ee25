// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/Shivansh-sp/eduvisor/internal/auth"
	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/common/database"
	"github.com/Shivansh-sp/eduvisor/internal/config"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
	"github.com/Shivansh-sp/eduvisor/internal/recommendation"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting EduVisor Advisory API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Printf("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL
	log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 5. Connect to Redis (optional)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without cache", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 6. Run database migrations
	log.Println("\n🔨 Step 6: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Printf("❌ Migration error: %v", err)
		log.Fatal("Failed to run migrations")
	}
	log.Println("✅ Database migrations completed")

	// 7. Initialize catalog modules
	log.Println("\n📚 Step 7: Initializing catalog modules...")

	collegesRepo := colleges.NewPostgresRepository(db)
	collegesService := colleges.NewService(collegesRepo)
	collegesHandler := colleges.NewHandler(collegesService)

	careersRepo := careers.NewPostgresRepository(db)
	careersService := careers.NewService(careersRepo)
	careersHandler := careers.NewHandler(careersService)

	coursesRepo := courses.NewPostgresRepository(db)
	coursesService := courses.NewService(coursesRepo)
	coursesHandler := courses.NewHandler(coursesService)

	log.Println("✅ Catalog modules initialized")

	// 8. Initialize recommendation module
	log.Println("\n🎯 Step 8: Initializing recommendation module...")

	recommendationRepo := recommendation.NewPostgresRepository(db)
	engine := recommendation.NewEngine(cfg.CollegeTopK, cfg.CareerTopK, cfg.CourseTopK)
	tracker := recommendation.NewTracker(cfg.SearchHistoryLimit)
	cache := recommendation.NewCache(redisClient, cfg.RecommendationTTL)

	recommendationService := recommendation.NewService(
		recommendationRepo,
		collegesService,
		careersService,
		coursesService,
		engine,
		tracker,
		cache,
		recommendation.Limits{
			CollegeCandidates: cfg.CollegeCandidateLimit,
			CareerCandidates:  cfg.CareerCandidateLimit,
			CourseCandidates:  cfg.CourseCandidateLimit,
		},
	)
	recommendationHandler := recommendation.NewHandler(recommendationService)

	log.Println("✅ Recommendation module initialized")

	// 9. Start refresh scheduler
	if cfg.EnableRefreshScheduler {
		log.Println("\n⏰ Step 9: Starting refresh scheduler...")
		scheduler := recommendation.NewScheduler(recommendationService, cfg.RefreshHour, cfg.RefreshStaleAfter)
		scheduler.Start(context.Background())
		log.Printf("✅ Refresh scheduler started (daily at %02d:00)", cfg.RefreshHour)
	} else {
		log.Println("\n⏰ Step 9: Refresh scheduler disabled")
	}

	// 10. Setup routes
	log.Println("\n🛣️  Step 10: Setting up routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	colleges.RegisterRoutes(router, collegesHandler, authMiddleware)
	log.Println("   ✅ College routes registered")

	careers.RegisterRoutes(router, careersHandler, authMiddleware)
	log.Println("   ✅ Career routes registered")

	courses.RegisterRoutes(router, coursesHandler, authMiddleware)
	log.Println("   ✅ Course routes registered")

	recommendation.RegisterRoutes(router, recommendationHandler, authMiddleware)
	log.Println("   ✅ Recommendation routes registered")

	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware(cfg.AllowedOrigin))

	// 11. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
        "name": "EduVisor Advisory API",
        "version": "1.0.0",
        "status": "running",
        "endpoints": {
            "health": "GET /health",
            "metrics": "GET /metrics",
            "recommendations": {
                "get": "GET /api/recommendations",
                "refresh": "POST /api/recommendations/refresh",
                "profile": "GET /api/recommendations/profile",
                "updateProfile": "PUT /api/recommendations/profile",
                "track": "POST /api/recommendations/track"
            },
            "colleges": {
                "list": "GET /api/colleges",
                "get": "GET /api/colleges/{id}",
                "create": "POST /api/colleges",
                "update": "PUT /api/colleges/{id}",
                "delete": "DELETE /api/colleges/{id}"
            },
            "careers": {
                "list": "GET /api/careers",
                "get": "GET /api/careers/{id}",
                "create": "POST /api/careers",
                "update": "PUT /api/careers/{id}",
                "delete": "DELETE /api/careers/{id}"
            },
            "courses": {
                "list": "GET /api/courses",
                "get": "GET /api/courses/{id}",
                "create": "POST /api/courses",
                "update": "PUT /api/courses/{id}",
                "delete": "DELETE /api/courses/{id}"
            }
        }
    }`))
}

// Middleware functions

// requestIDMiddleware tags every request with a request id header
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(allowedOrigin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// runMigrations executes database migrations
func runMigrations(db *sqlx.DB) error {
	log.Println("   - Creating/updating tables...")

	migrations := []string{
		// Per-user profile documents. Sections live in JSONB; version
		// guards concurrent saves.
		`CREATE TABLE IF NOT EXISTS user_profiles (
            id SERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL,
            academic_background JSONB NOT NULL DEFAULT '{}',
            interests JSONB NOT NULL DEFAULT '{}',
            preferences JSONB NOT NULL DEFAULT '{}',
            assessment_results JSONB NOT NULL DEFAULT '{}',
            behavior_data JSONB NOT NULL DEFAULT '{}',
            recommendations JSONB NOT NULL DEFAULT '{}',
            version INTEGER NOT NULL DEFAULT 1,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

		// College catalog
		`CREATE TABLE IF NOT EXISTS colleges (
            id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            type VARCHAR(50) NOT NULL,
            category VARCHAR(100),
            state VARCHAR(100),
            city VARCHAR(100),
            programs JSONB NOT NULL DEFAULT '[]',
            facilities TEXT[] NOT NULL DEFAULT '{}',
            rating_overall DOUBLE PRECISION DEFAULT 0,
            placement JSONB NOT NULL DEFAULT '{}',
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

		// Career catalog
		`CREATE TABLE IF NOT EXISTS careers (
            id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            description TEXT,
            salary_min DOUBLE PRECISION DEFAULT 0,
            salary_max DOUBLE PRECISION DEFAULT 0,
            growth_rate DOUBLE PRECISION DEFAULT 0,
            demand VARCHAR(50),
            skills TEXT[] NOT NULL DEFAULT '{}',
            industries TEXT[] NOT NULL DEFAULT '{}',
            job_roles TEXT[] NOT NULL DEFAULT '{}',
            courses TEXT[] NOT NULL DEFAULT '{}',
            requirements JSONB NOT NULL DEFAULT '{}',
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

		// Course catalog
		`CREATE TABLE IF NOT EXISTS courses (
            id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            category VARCHAR(100),
            subjects TEXT[] NOT NULL DEFAULT '{}',
            fees_min DOUBLE PRECISION DEFAULT 0,
            fees_max DOUBLE PRECISION DEFAULT 0,
            career_prospects TEXT[] NOT NULL DEFAULT '{}',
            college_ids BIGINT[] NOT NULL DEFAULT '{}',
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_user_id ON user_profiles(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_colleges_state ON colleges(state)`,
		`CREATE INDEX IF NOT EXISTS idx_colleges_type ON colleges(type)`,
		`CREATE INDEX IF NOT EXISTS idx_careers_demand ON careers(demand)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_category ON courses(category)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
