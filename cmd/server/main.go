package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"printshop-backend/internal/auth"
	"printshop-backend/internal/cache"
	"printshop-backend/internal/config"
	"printshop-backend/internal/database"
	"printshop-backend/internal/db"
	"printshop-backend/internal/handlers"
	"printshop-backend/internal/health"
	h "printshop-backend/internal/http"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/repositories"
	"printshop-backend/internal/services"
	"printshop-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("[Main] Migrations failed: %v", err)
	}
	cancel()

	// Redis is optional; everything degrades to cache misses without it
	if err := cache.Init(cfg); err != nil {
		log.Printf("[Main] Redis unavailable, running without cache: %v", err)
	} else {
		log.Println("[Main] Redis cache connected")
	}

	jwtManager := auth.NewJWTManager(cfg)
	healthChecker := health.NewHealthChecker(pool)
	hub := realtime.NewHub()

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	teacherRepo := repositories.NewTeacherRepository(pool)
	operationRepo := repositories.NewOperationRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	savedReportRepo := repositories.NewSavedReportRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	teacherService := services.NewTeacherService(teacherRepo, operationRepo, paymentRepo, hub)
	operationService := services.NewOperationService(operationRepo, teacherRepo, hub)
	paymentService := services.NewPaymentService(paymentRepo, teacherRepo, hub)
	expenseService := services.NewExpenseService(expenseRepo, hub)
	dashboardService := services.NewDashboardService(teacherRepo, operationRepo, paymentRepo, expenseRepo)
	reportService := services.NewReportService(teacherRepo, operationRepo, paymentRepo, expenseRepo, savedReportRepo)
	importService := services.NewImportService(teacherRepo, operationRepo, paymentRepo, expenseRepo, hub)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	teacherHandler := handlers.NewTeacherHandler(teacherService)
	operationHandler := handlers.NewOperationHandler(operationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	importHandler := handlers.NewImportHandler(importService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := h.NewRouter(
		authHandler,
		userHandler,
		teacherHandler,
		operationHandler,
		paymentHandler,
		expenseHandler,
		dashboardHandler,
		reportHandler,
		importHandler,
		healthHandler,
		hub,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(corsMiddleware(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("[Main] Print shop backend listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("[Main] Server failed: %v", err)
	}
}
