package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"unijoblink/internal/app"
	"unijoblink/internal/config"
	"unijoblink/internal/database"
	apphttp "unijoblink/internal/http"
	"unijoblink/internal/http/handlers"
	"unijoblink/internal/http/metrics"
	httpmw "unijoblink/internal/http/middleware"
	"unijoblink/internal/mailer"
	"unijoblink/internal/notify"
	"unijoblink/internal/observability"
	"unijoblink/internal/repository/postgres"
	"unijoblink/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	studentRepo := postgres.NewStudentProfileRepository(db)
	companyRepo := postgres.NewCompanyProfileRepository(db)
	universityRepo := postgres.NewUniversityProfileRepository(db)
	teacherRepo := postgres.NewTeacherProfileRepository(db)
	postRepo := postgres.NewPostRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	refreshRepo := postgres.NewRefreshTokenRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}
	dispatcher := notify.NewDispatcher(notificationRepo, accountRepo, mail, logger)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	authService := app.NewAuthService(accountRepo, accountRepo, refreshRepo, analyticsRepo, jwtProvider, logger, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	accountService := app.NewAccountService(accountRepo, accountRepo, studentRepo, teacherRepo, companyRepo, analyticsRepo)
	directoryService := app.NewDirectoryService(accountRepo, studentRepo, teacherRepo, companyRepo)
	profileService := app.NewProfileService(studentRepo, companyRepo, universityRepo, teacherRepo, analyticsRepo)
	postService := app.NewPostService(postRepo, analyticsRepo)
	applicationService := app.NewApplicationService(applicationRepo, postRepo, dispatcher, analyticsRepo)
	interviewService := app.NewInterviewService(interviewRepo, applicationRepo, postRepo, dispatcher, analyticsRepo)
	notificationService := app.NewNotificationService(notificationRepo)

	var rateLimiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		rateLimiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	authHandler := handlers.NewAuthHandler(authService, rateLimiter)
	profileHandler := handlers.NewProfileHandler(profileService)
	postHandler := handlers.NewPostHandler(postService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, rateLimiter)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(accountService, directoryService)
	authMiddleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         authHandler,
		ProfileHandler:      profileHandler,
		PostHandler:         postHandler,
		ApplicationHandler:  applicationHandler,
		InterviewHandler:    interviewHandler,
		NotificationHandler: notificationHandler,
		AdminHandler:        adminHandler,
		AuthMiddleware:      authMiddleware,
		Metrics:             collector,
		Logger:              logger,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
