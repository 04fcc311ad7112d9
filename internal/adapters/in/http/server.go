package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/chat"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler
	confirmPaymentHandler    commands.ConfirmPaymentCommandHandler
	publishLocationHandler   commands.PublishDriverLocationCommandHandler
	submitReviewHandler      commands.SubmitReviewCommandHandler
	openChatSessionHandler   commands.OpenChatSessionCommandHandler
	registerPushTokenHandler commands.RegisterPushTokenCommandHandler

	// Query handlers
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	publishLocationHandler commands.PublishDriverLocationCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	openChatSessionHandler commands.OpenChatSessionCommandHandler,
	registerPushTokenHandler commands.RegisterPushTokenCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		requestTransitionHandler: requestTransitionHandler,
		confirmPaymentHandler:    confirmPaymentHandler,
		publishLocationHandler:   publishLocationHandler,
		submitReviewHandler:      submitReviewHandler,
		openChatSessionHandler:   openChatSessionHandler,
		registerPushTokenHandler: registerPushTokenHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getOrderTrackingHandler:  getOrderTrackingHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order at checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(newOrder.BuyerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyer ID: "+err.Error())
	}

	storeID, err := kernel.UUIDFromBytes(newOrder.StoreId[:])
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(),
		buyerID,
		storeID,
		newOrder.ShippingAddress,
		newOrder.TotalCents,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to place order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders - lists a participant's undelivered orders.
func (s *Server) GetActiveOrders(ctx echo.Context, params servers.GetActiveOrdersParams) error {
	participantID, err := kernel.UUIDFromBytes(params.ParticipantId[:])
	if err != nil {
		return badRequest(ctx, "Invalid participant ID: "+err.Error())
	}

	query, err := queries.NewGetActiveOrdersQuery(participantID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, activeOrder := range orders {
		response[i] = servers.Order{
			Id:              activeOrder.ID.Bytes(),
			Status:          servers.OrderStatus(activeOrder.Status.String()),
			PaymentStatus:   servers.OrderPaymentStatus(activeOrder.PaymentStatus.String()),
			ShippingAddress: activeOrder.ShippingAddress,
			TotalCents:      activeOrder.TotalCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestTransition handles POST /api/v1/orders/{orderId}/transition -
// advances an order to the next lifecycle status on behalf of a participant.
func (s *Server) RequestTransition(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	actorID, err := kernel.UUIDFromBytes(request.ActorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actor ID: "+err.Error())
	}

	role, err := order.RoleFromString(string(request.ActorRole))
	if err != nil {
		return badRequest(ctx, "Invalid actor role: "+err.Error())
	}

	actor, err := order.NewActor(actorID, role)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	to, err := order.StatusFromString(string(request.To))
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, to, actor)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	if handleErr := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to advance order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment - records a
// payment confirmation. Repeated confirmations succeed without effect.
func (s *Server) ConfirmPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid payment confirmation: "+err.Error())
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to confirm payment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PublishDriverLocation handles POST /api/v1/orders/{orderId}/location -
// ingests a position sample from the assigned driver's device.
func (s *Server) PublishDriverLocation(ctx echo.Context, orderId openapi_types.UUID) error {
	var location servers.DriverLocation
	if err := ctx.Bind(&location); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	driverID, err := kernel.UUIDFromBytes(location.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver ID: "+err.Error())
	}

	point, err := kernel.NewGeoPoint(location.Lat, location.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	cmd, err := commands.NewPublishDriverLocationCommand(orderID, driverID, point, location.MeasuredAt)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.publishLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to publish position")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking - returns
// the tracking view of an order including the driver's last known position.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	tracking, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve tracking view")
	}

	response := servers.OrderTracking{
		OrderId:         tracking.OrderID.Bytes(),
		Status:          servers.OrderTrackingStatus(tracking.Status.String()),
		PaymentStatus:   servers.OrderTrackingPaymentStatus(tracking.PaymentStatus.String()),
		PositionIsStale: tracking.PositionIsStale,
	}

	if tracking.DriverID != nil {
		driverID := tracking.DriverID.Bytes()
		response.DriverId = &driverID
	}
	if tracking.DriverPoint != nil {
		response.DriverPosition = &servers.GeoPoint{
			Lat: tracking.DriverPoint.Latitude(),
			Lng: tracking.DriverPoint.Longitude(),
		}
	}
	if tracking.DriverSeenAt != nil {
		seenAt := *tracking.DriverSeenAt
		response.DriverSeenAt = &seenAt
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitReview handles POST /api/v1/orders/{orderId}/reviews - records the
// buyer's review of the store or the driver after delivery.
func (s *Server) SubmitReview(ctx echo.Context, orderId openapi_types.UUID) error {
	var newReview servers.NewReview
	if err := ctx.Bind(&newReview); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	authorID, err := kernel.UUIDFromBytes(newReview.AuthorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid author ID: "+err.Error())
	}

	subjectID, err := kernel.UUIDFromBytes(newReview.SubjectId[:])
	if err != nil {
		return badRequest(ctx, "Invalid subject ID: "+err.Error())
	}

	comment := ""
	if newReview.Comment != nil {
		comment = *newReview.Comment
	}

	cmd, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(),
		orderID,
		subjectID,
		authorID,
		newReview.Rating,
		comment,
	)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if handleErr := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to submit review")
	}

	return ctx.NoContent(http.StatusCreated)
}

// OpenChatSession handles POST /api/v1/chat/sessions - opens the chat session
// between a buyer and a store, returning the existing one when present.
func (s *Server) OpenChatSession(ctx echo.Context) error {
	var newSession servers.NewChatSession
	if err := ctx.Bind(&newSession); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(newSession.BuyerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyer ID: "+err.Error())
	}

	storeID, err := kernel.UUIDFromBytes(newSession.StoreId[:])
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}

	cmd, err := commands.NewOpenChatSessionCommand(buyerID, storeID)
	if err != nil {
		return badRequest(ctx, "Invalid session request: "+err.Error())
	}

	session, err := s.openChatSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to open chat session")
	}

	return ctx.JSON(http.StatusOK, servers.ChatSession{
		Id:      session.ID().Bytes(),
		BuyerId: session.BuyerID().Bytes(),
		StoreId: session.StoreID().Bytes(),
	})
}

// RegisterPushToken handles PUT /api/v1/users/{userId}/push-token - stores a
// user's push notification token. A null token clears the registration.
func (s *Server) RegisterPushToken(ctx echo.Context, userId openapi_types.UUID) error {
	var request servers.PushTokenRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return badRequest(ctx, "Invalid user ID: "+err.Error())
	}

	token := ""
	if request.Token != nil {
		token = *request.Token
	}

	cmd, err := commands.NewRegisterPushTokenCommand(userID, token)
	if err != nil {
		return badRequest(ctx, "Invalid token request: "+err.Error())
	}

	if handleErr := s.registerPushTokenHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register push token")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// domainError maps an application error to the HTTP status the API contract
// promises for it. Unrecognized errors collapse to 500 with a generic message
// so internals never leak to clients.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, order.ErrUnauthorized),
		errors.Is(err, commands.ErrReviewAuthorIsNotBuyer):
		return respond(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrPositionNotPublishable),
		errors.Is(err, review.ErrAlreadyReviewed),
		errors.Is(err, commands.ErrOrderNotReviewable):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, chat.ErrSameParticipant),
		errors.Is(err, commands.ErrReviewSubjectIsNotParticipant):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, fallback)
	}
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func notFound(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusNotFound, message)
}

func internalError(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusInternalServerError, message)
}
