package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/joblane/joblane-backend/internal/config"
	"github.com/joblane/joblane-backend/internal/database"
	"github.com/joblane/joblane-backend/internal/handlers"
	"github.com/joblane/joblane-backend/internal/middleware"
	"github.com/joblane/joblane-backend/internal/repository"
	"github.com/joblane/joblane-backend/internal/security"
	"github.com/joblane/joblane-backend/internal/services"
	"github.com/joblane/joblane-backend/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Println("Failed to close database: ", err)
		}
	}()

	// 3. Object Storage
	var uploader storage.Uploader = storage.DisabledUploader{}
	if cfg.CloudinaryURL != "" {
		uploader, err = storage.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to configure Cloudinary: ", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, file uploads disabled")
	}

	// 4. Rate Limiter (redis when configured, in-memory otherwise)
	var limiter middleware.Limiter = middleware.NewRateLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("Invalid REDIS_URL: ", err)
		}
		limiter = middleware.NewRedisLimiter(redis.NewClient(opts))
		log.Println("Rate limiting backed by redis")
	}

	// 5. Repositories & Core Services
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	tokens := security.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo, uploader)
	companyService := services.NewCompanyService(companyRepo, uploader)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)

	// 6. Handlers & Middleware
	userHandler := handlers.NewUserHandler(userService, tokens, cfg.IsProduction())
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	// 7. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	loginLimit := middleware.RateLimit(limiter, func(c *gin.Context) string {
		return "login:" + c.ClientIP()
	}, 10, time.Minute)

	// 8. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", loginLimit, userHandler.Login)
			user.POST("/logout", userHandler.Logout)
			user.POST("/profile/update", authMiddleware.Authenticate(), userHandler.UpdateProfile)
		}

		company := api.Group("/company", authMiddleware.Authenticate())
		{
			company.POST("/register", companyHandler.Register)
			company.GET("/get", companyHandler.List)
			company.GET("/get/:id", companyHandler.GetByID)
			company.PUT("/update/:id", companyHandler.Update)
		}

		job := api.Group("/job")
		{
			job.POST("/post", authMiddleware.Authenticate(), jobHandler.Post)
			job.GET("/get", jobHandler.Search)
			job.GET("/get/:id", jobHandler.GetByID)
			job.GET("/getadminjobs", authMiddleware.Authenticate(), jobHandler.AdminJobs)
		}

		application := api.Group("/application")
		{
			application.GET("/apply/:id", authMiddleware.Authenticate(), applicationHandler.Apply)
			application.GET("/get", authMiddleware.Authenticate(), applicationHandler.List)
			application.GET("/:id/applicants", authMiddleware.Authenticate(), applicationHandler.Applicants)
			application.POST("/status/:id/update", applicationHandler.UpdateStatus)
		}
	}

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
