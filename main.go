package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mocksocial/config"
	"mocksocial/handlers"
	"mocksocial/middleware"
	"mocksocial/seed"
	"mocksocial/services"
	"mocksocial/store"
	"mocksocial/utils"
	"mocksocial/websocket"
)

const serviceName = "mocksocial"

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[server] failed to load config: %v", err)
	}
	log.SetLevel(cfg.Level())

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	ds := store.New()
	tokens := utils.NewTokenManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	svc := services.New(ds, tokens, cfg.BcryptCost, hub)

	seeder, err := seed.New(ds, seed.Options{
		UserAmount:      cfg.FakeUserAmount,
		PostAmount:      cfg.FakePostAmount,
		CommentAmount:   cfg.FakeCommentAmount,
		DefaultPassword: cfg.SeedPassword,
		BcryptCost:      cfg.BcryptCost,
		WithAdmin:       cfg.IsDevelopment(),
	}, hub)
	if err != nil {
		log.Fatalf("[server] failed to create seeder: %v", err)
	}
	if err := seeder.SeedFromConfig(); err != nil {
		log.Fatalf("[server] failed to seed store: %v", err)
	}

	stopRefresh := func() {}
	if cfg.RefreshInterval > 0 {
		stopRefresh, err = seed.RefreshStore(seeder, cfg.RefreshInterval)
		if err != nil {
			log.Fatalf("[server] failed to schedule store refresh: %v", err)
		}
	}
	defer stopRefresh()

	// A nil *kafka.Writer must not end up inside the interface.
	var accessLog middleware.MessageWriter
	if kw := middleware.NewKafkaWriter(cfg.KafkaAddr, cfg.KafkaTopic); kw != nil {
		accessLog = kw
		defer func() {
			if err := kw.Close(); err != nil {
				log.Errorf("[server] failed to close kafka writer: %v", err)
			}
		}()
	} else {
		log.Warn("[server] kafka was not configured, access logs will not be sent to Kafka")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(serviceName, accessLog))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws", websocket.ServeWS(hub, tokens, svc.User))

	h := handlers.New(svc, tokens, cfg.IsDevelopment())
	h.RegisterRoutes(r.Group("/api/v1"), middleware.AuthMiddleware(tokens, svc.User))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Infof("[server] starting on %s (%s)", srv.Addr, cfg.AppEnv)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[server] failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("[server] HTTP server shutdown error: %v", err)
	} else {
		log.Info("[server] HTTP server shut down gracefully")
	}
}
