package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/fcm"
	"marketplace/internal/adapters/out/postgres/chatrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	config, err := cmd.ParseConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	sender, err := createPushSender(config, logger)
	if err != nil {
		logger.Error("Failed to initialize push sender", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, sender, logger)
	if err != nil {
		logger.Error("Failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		app.CreateRelayNotificationsCommandHandler(),
		app.CreateAdvancePaidOrdersCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, config.HTTPPort)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&outboxrepo.EventDTO{},
		&userrepo.UserDTO{},
		&reviewrepo.ReviewDTO{},
		&chatrepo.SessionDTO{},
	)
}

func createPushSender(config cmd.Config, logger *slog.Logger) (ports.PushSender, error) {
	if config.FCMCredentialsFile == "" {
		logger.Warn("FCM credentials not configured, notifications will be logged only")
		return dryRunSender{logger: logger}, nil
	}
	return fcm.NewSender(context.Background(), config.FCMCredentialsFile)
}

// dryRunSender stands in for FCM when no credentials are configured.
type dryRunSender struct {
	logger *slog.Logger
}

func (s dryRunSender) Send(ctx context.Context, message ports.PushMessage) error {
	s.logger.InfoContext(ctx, "Push notification (dry run)",
		"title", message.Title,
		"body", message.Body,
		"deep_link", message.DeepLink,
	)
	return nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateRequestTransitionCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreatePublishDriverLocationCommandHandler(),
		app.CreateSubmitReviewCommandHandler(),
		app.CreateOpenChatSessionCommandHandler(),
		app.CreateRegisterPushTokenCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOrderTrackingQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
