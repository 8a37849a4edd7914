package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Uwezo9048/Dr.Foscah/internal/config"
	"github.com/Uwezo9048/Dr.Foscah/internal/handler"
	"github.com/Uwezo9048/Dr.Foscah/internal/logging"
	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
	"github.com/Uwezo9048/Dr.Foscah/internal/service"
	"github.com/Uwezo9048/Dr.Foscah/pkg/auth"
	"github.com/Uwezo9048/Dr.Foscah/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := repository.Seed(context.Background(), pool, cfg.DefaultOperatorPassword); err != nil {
		logging.Fatal("failed to seed database", "error", err)
	}

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	operatorRepo := repository.NewPgOperatorRepository(pool)
	contentRepo := repository.NewPgContentRepository(pool)
	templateRepo := repository.NewPgTemplateRepository(pool)

	issuer := auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.MailFromName,
	})
	if !mail.Enabled() {
		slog.Info("smtp credentials not set, replies will be recorded without sending email")
	}

	submissionService := service.NewSubmissionService(submissionRepo, templateRepo, mail)
	authService := service.NewAuthService(operatorRepo, issuer)
	contentService := service.NewContentService(contentRepo)
	templateService := service.NewTemplateService(templateRepo)

	h := handler.New(pool, cfg.FrontendURL)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	adminSubmissionHandler := handler.NewAdminSubmissionHandler(submissionService)
	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)
	templateHandler := handler.NewTemplateHandler(templateService)

	// Only the public contact form is rate limited.
	submitLimiter := handler.NewRateLimiter(10)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/content", contentHandler.Get)
	mux.Handle("POST /api/clients", submitLimiter.Middleware(http.HandlerFunc(submissionHandler.Submit)))
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)

	// Everything under /api/admin except login requires a bearer token.
	wrapAuth := auth.RequireAuth(issuer)
	mux.Handle("POST /api/admin/change-password", wrapAuth(http.HandlerFunc(authHandler.ChangePassword)))

	mux.Handle("GET /api/admin/clients", wrapAuth(http.HandlerFunc(adminSubmissionHandler.List)))
	mux.Handle("GET /api/admin/clients/{id}", wrapAuth(http.HandlerFunc(adminSubmissionHandler.Get)))
	mux.Handle("PUT /api/admin/clients/{id}/status", wrapAuth(http.HandlerFunc(adminSubmissionHandler.UpdateStatus)))
	mux.Handle("PUT /api/admin/clients/{id}/read", wrapAuth(http.HandlerFunc(adminSubmissionHandler.MarkRead)))
	mux.Handle("PUT /api/admin/clients/{id}/reply", wrapAuth(http.HandlerFunc(adminSubmissionHandler.Reply)))
	mux.Handle("POST /api/admin/clients/{id}/send-reply", wrapAuth(http.HandlerFunc(adminSubmissionHandler.SendReply)))
	mux.Handle("PUT /api/admin/clients/mark-all-read", wrapAuth(http.HandlerFunc(adminSubmissionHandler.MarkAllRead)))
	mux.Handle("DELETE /api/admin/clients/{id}", wrapAuth(http.HandlerFunc(adminSubmissionHandler.Delete)))
	mux.Handle("GET /api/admin/message-counts", wrapAuth(http.HandlerFunc(adminSubmissionHandler.Counts)))

	mux.Handle("POST /api/admin/content", wrapAuth(http.HandlerFunc(contentHandler.Save)))

	mux.Handle("GET /api/admin/email-templates", wrapAuth(http.HandlerFunc(templateHandler.List)))
	mux.Handle("POST /api/admin/email-templates", wrapAuth(http.HandlerFunc(templateHandler.Save)))
	mux.Handle("GET /api/admin/email-templates/{id}", wrapAuth(http.HandlerFunc(templateHandler.Get)))
	mux.Handle("DELETE /api/admin/email-templates/{id}", wrapAuth(http.HandlerFunc(templateHandler.Delete)))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
