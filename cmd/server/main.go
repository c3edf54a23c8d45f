package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"northline-decorators/internal/api"
	"northline-decorators/internal/common/aws"
	"northline-decorators/internal/common/config"
	"northline-decorators/internal/common/logger"
	"northline-decorators/internal/common/observability"
	"northline-decorators/internal/leads"
	"northline-decorators/internal/site"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting", map[string]interface{}{
		"app":         cfg.App.Name,
		"version":     version,
		"environment": cfg.App.Environment,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	siteContent := site.Default()

	// The SES client only exists when a real credential is configured;
	// otherwise the pipeline answers 503 with the phone fallback.
	var sesClient leads.SESService
	if cfg.Integrations.EmailConfigured() {
		client, err := aws.NewSESClient(context.Background(), cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		sesClient = client
		log.Info("email delivery enabled", map[string]interface{}{
			"region": cfg.Integrations.AWS.Region,
			"from":   cfg.Integrations.AWS.SES.FromEmail,
		})
	} else {
		log.Warn("email delivery not configured; quote requests will be answered with the phone fallback", nil)
	}

	leadsService := leads.NewService(&leads.Config{
		Enabled:   cfg.Integrations.EmailConfigured(),
		FromEmail: cfg.Integrations.AWS.SES.FromEmail,
		FromName:  cfg.Integrations.AWS.SES.FromName,
		ToEmail:   cfg.Notifications.Email.ToEmail,
		Timeout:   cfg.Notifications.SendTimeout(),
	}, sesClient, log, obs)

	router := api.SetupRoutes(version, buildTime, siteContent, leadsService, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		log.Info("listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]interface{}{"error": err.Error()})
	}
}
