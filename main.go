package main

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/LeonSoftLab/SupportAPI/internal/auth"
	"github.com/LeonSoftLab/SupportAPI/internal/config"
	"github.com/LeonSoftLab/SupportAPI/internal/db"
	"github.com/LeonSoftLab/SupportAPI/internal/handler"
	"github.com/LeonSoftLab/SupportAPI/internal/service"
)

// @title Support API
// @version 1.0
// @description Internal support/helpdesk backend.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres init failed: %v", err)
	}
	defer pool.Close()

	repo := db.NewPostgres(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	// Any auth misconfiguration is fatal here, never per-request.
	ttlMinutes, err := strconv.Atoi(cfg.Auth.TokenTTLMinutes)
	if err != nil {
		log.Fatalf("invalid JWT_EXPIRATION_TIME_MINUTES: %v", err)
	}
	codec, err := auth.NewTokenCodec(cfg.Auth.JWTSecret, time.Duration(ttlMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("token codec init failed: %v", err)
	}
	hasher := auth.NewHasher()

	var dir auth.Directory = repo
	var invalidator service.Invalidator
	if cfg.Redis.Addr != "" {
		cacheTTL, err := time.ParseDuration(cfg.Redis.UserCacheTTL)
		if err != nil {
			log.Fatalf("invalid USER_CACHE_TTL: %v", err)
		}
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		cache := db.NewUserCache(repo, rdb, cacheTTL)
		dir = cache
		invalidator = cache
		log.Printf("user directory cache enabled (ttl=%s)", cacheTTL)
	}

	authService := auth.NewService(dir, hasher, codec)
	userService := service.NewUserService(repo, hasher, invalidator)
	reportService := service.NewReportService(repo)
	groupService := service.NewGroupService(repo)
	taskService := service.NewTaskService(repo)
	eventService := service.NewLogEventService(repo)

	if cfg.Auth.AdminUsername != "" || cfg.Auth.AdminPassword != "" {
		if err := userService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			log.Fatalf("admin bootstrap failed: %v", err)
		}
	}

	authHandler := handler.NewAuthHandler(authService, eventService)
	userHandler := handler.NewUserHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)
	groupHandler := handler.NewGroupHandler(groupService)
	taskHandler := handler.NewTaskHandler(taskService)
	eventHandler := handler.NewLogEventHandler(eventService)

	router := gin.Default()
	if cfg.Server.AllowedOrigins != "" {
		router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.AllowedOrigins, ",")))
	}

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)
	router.POST("/login", authHandler.Login)

	api := router.Group("/api/v1", handler.AuthMiddleware(authService))
	{
		api.GET("/me", authHandler.Me)

		api.GET("/reports", reportHandler.ListReports)
		api.GET("/reports/:code", reportHandler.GetReportsByCode)

		api.GET("/groups", groupHandler.ListGroups)
		api.GET("/groups/:code", groupHandler.GetGroupsByCode)

		api.GET("/grouprows", groupHandler.ListGroupRowsByCode)
		api.GET("/grouprows/:group_id", groupHandler.ListGroupRows)

		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.POST("/tasks", taskHandler.CreateTask)

		api.GET("/logevents", eventHandler.ListLogEvents)
	}

	admin := api.Group("", handler.RequireAdmin())
	{
		admin.POST("/reports", reportHandler.CreateReport)
		admin.PUT("/reports/:id", reportHandler.UpdateReport)
		admin.DELETE("/reports/:id", reportHandler.DeleteReport)

		admin.POST("/groups", groupHandler.CreateGroup)
		admin.PUT("/groups/:id", groupHandler.UpdateGroup)
		admin.DELETE("/groups/:id", groupHandler.DeleteGroup)

		admin.POST("/grouprows", groupHandler.CreateGroupRow)

		admin.GET("/users", userHandler.ListUsers)
		admin.GET("/users/:username", userHandler.GetUser)
		admin.POST("/users", userHandler.CreateUser)
		admin.PUT("/users/:username", userHandler.UpdateUser)
		admin.DELETE("/users/:username", userHandler.DeleteUser)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
