package main

import (
	"log"

	"hackpass/config"
	"hackpass/internal/database"
	"hackpass/internal/handler"
	"hackpass/internal/mailer"
	"hackpass/internal/repository"
	"hackpass/internal/service"
	"hackpass/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	hackerRepo := repository.NewHackerRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	organizerRepo := repository.NewOrganizerRepository(pool)

	attendanceService := service.NewAttendanceService(pool, attendanceRepo, hackerRepo)
	registrationService := service.NewRegistrationService(hackerRepo, mailer.NewSMTPMailer(cfg.Mail))
	eventService := service.NewEventService(pool, eventRepo, attendanceRepo, cfg.Auth.DeleteEventPassword)
	verifier := service.NewAuthService(organizerRepo, cfg.Auth)

	sessions := session.NewRedisStore(rdb, cfg.Auth.SessionTTL)

	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	authHandler := handler.NewAuthHandler(verifier, sessions, int(cfg.Auth.SessionTTL.Seconds()))
	authHandler.RegisterRoutes(router)

	protected := router.Group("/", handler.RequireSession(sessions))
	adminOnly := handler.RequireAdmin()

	authHandler.RegisterProtectedRoutes(protected)
	handler.NewPageHandler(eventService, attendanceService).RegisterRoutes(protected)
	handler.NewAttendanceHandler(attendanceService).RegisterRoutes(protected, adminOnly)
	handler.NewHackerHandler(registrationService).RegisterRoutes(protected, adminOnly)
	handler.NewEventHandler(eventService).RegisterRoutes(protected, adminOnly)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
