package cmd

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/orderstream"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/notifications"
	"marketplace/internal/core/application/tracking"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"log/slog"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	stream     *orderstream.Hub
	router     services.NotificationRouter
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	sender ports.PushSender,
	logger *slog.Logger,
) (CompositionRoot, error) {
	router, err := services.NewNotificationRouter(config.PublicBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		stream:     orderstream.NewHub(),
		router:     router,
		dispatcher: notifications.NewDispatcher(sender, logger),
		logger:     logger,
	}, nil
}

// OrderStream exposes the in-process change feed so tracking views can
// subscribe to the orders they follow.
func (c *CompositionRoot) OrderStream() *orderstream.Hub {
	return c.stream
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.OrderOutboxUoWFactory = FuncOrderOutboxUoWFactory(func() commands.OrderOutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.OrderOutboxUoWFactory = FuncOrderOutboxUoWFactory(func() commands.OrderOutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderOutboxUoWFactory = FuncOrderOutboxUoWFactory(func() commands.OrderOutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreatePublishDriverLocationCommandHandler() commands.PublishDriverLocationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishDriverLocationCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	var f commands.RelayUoWFactory = FuncRelayUoWFactory(func() commands.RelayUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayNotificationsCommandHandler(f, c.router, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateAdvancePaidOrdersCommandHandler() commands.AdvancePaidOrdersCommandHandler {
	var f commands.OrderOutboxUoWFactory = FuncOrderOutboxUoWFactory(func() commands.OrderOutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvancePaidOrdersCommandHandler(f, c.stream)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenChatSessionCommandHandler() commands.OpenChatSessionCommandHandler {
	var f commands.ChatUoWFactory = FuncChatUoWFactory(func() commands.ChatUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenChatSessionCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPushTokenCommandHandler() commands.RegisterPushTokenCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPushTokenCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB, c.config.PositionFreshness)
}

// CreateTrackingManager wires a driver-side tracking manager: sensor samples
// for the driver's active delivery flow through the location command handler
// into the store.
func (c *CompositionRoot) CreateTrackingManager(driverID kernel.UUID, sensor ports.LocationSensor) *tracking.Manager {
	sink := handlerPositionSink{handler: c.CreatePublishDriverLocationCommandHandler()}
	opts := ports.SampleOptions{
		HighAccuracy:  true,
		SampleTimeout: 10 * time.Second,
	}
	return tracking.NewManager(driverID, sensor, sink, c.stream, opts, c.logger)
}

// CreateTrackingView builds a live tracking view seeded with the given
// snapshot, using the configured position freshness threshold.
func (c *CompositionRoot) CreateTrackingView(initial ports.OrderSnapshot) *tracking.View {
	return tracking.NewView(initial, c.stream, c.config.PositionFreshness)
}

// handlerPositionSink adapts the location command handler to the
// tracking.PositionSink port.
type handlerPositionSink struct {
	handler commands.PublishDriverLocationCommandHandler
}

func (s handlerPositionSink) PublishPosition(
	ctx context.Context,
	orderID kernel.UUID,
	driverID kernel.UUID,
	point kernel.GeoPoint,
	measuredAt time.Time,
) error {
	cmd, err := commands.NewPublishDriverLocationCommand(orderID, driverID, point, measuredAt)
	if err != nil {
		return err
	}
	return s.handler.Handle(ctx, cmd)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderOutboxUoWFactory func() commands.OrderOutboxUoW

func (f FuncOrderOutboxUoWFactory) Create() commands.OrderOutboxUoW {
	return f()
}

type FuncRelayUoWFactory func() commands.RelayUoW

func (f FuncRelayUoWFactory) Create() commands.RelayUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncChatUoWFactory func() commands.ChatUoW

func (f FuncChatUoWFactory) Create() commands.ChatUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
