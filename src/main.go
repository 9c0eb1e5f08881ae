package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financezenn-server/src/advisor"
	"financezenn-server/src/api"
	"financezenn-server/src/config"
	"financezenn-server/src/db"
	"financezenn-server/src/logging"
	"financezenn-server/src/middleware"
	"financezenn-server/src/notify"
	"financezenn-server/src/queue"
	"financezenn-server/src/store"
	"financezenn-server/src/worker"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With(logging.FieldComponent, logging.ComponentApp)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", logging.FieldError, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{
		Auth:           middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		DemoMode:       cfg.DemoMode,
	}

	switch store.Backend(cfg.DataBackend) {
	case store.PostgresBackend:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("DB connection failed", logging.FieldError, err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := db.Migrate(pool); err != nil {
			logger.Error("DB migration failed", logging.FieldError, err)
			os.Exit(1)
		}
		deps.Store = store.NewPostgresStore(pool)
	case store.MemoryBackend:
		logger.Warn("Using in-memory store; data is lost on restart")
		deps.Store = store.NewMemoryStore()
	}

	if cfg.SummaryCacheEnabled {
		cache, err := db.NewSummaryCache(cfg.SummaryCacheTTL)
		if err != nil {
			logger.Error("Summary cache setup failed", logging.FieldError, err)
			os.Exit(1)
		}
		defer cache.Close()
		deps.Cache = cache
	}

	if cfg.AdviceEnabled() {
		client, err := advisor.New(advisor.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			logger.Error("Advisor setup failed", logging.FieldError, err)
			os.Exit(1)
		}
		deps.Advisor = client
	} else {
		logger.Info("OPENAI_API_KEY not set; advice routes disabled")
	}

	var notifier *notify.Notifier
	if cfg.NotificationsEnabled() {
		n, err := notify.New(notify.Config{
			AccountSID:  cfg.TwilioAccountSID,
			AuthToken:   cfg.TwilioAuthToken,
			PhoneNumber: cfg.TwilioPhoneNumber,
		})
		if err != nil {
			logger.Error("Notifier setup failed", logging.FieldError, err)
			os.Exit(1)
		}
		notifier = n
		deps.Sender = n
	}

	if cfg.QueueEnabled() {
		client, err := queue.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("AMQP setup failed", logging.FieldError, err)
			os.Exit(1)
		}
		defer client.Close()
		deps.Publisher = client

		if notifier != nil {
			w := worker.NewNotificationWorker(client, notifier)
			go func() {
				if err := w.Run(ctx); err != nil {
					logger.Error("Notification worker exited", logging.FieldError, err)
				}
			}()
		} else {
			logger.Warn("AMQP configured without Twilio; jobs are queued but not sent by this process")
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API server running", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", logging.FieldError, err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", logging.FieldError, err)
	}
}
