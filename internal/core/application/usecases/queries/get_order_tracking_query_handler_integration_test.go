package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct {
	mock.Mock
}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// GetOrderTrackingQueryHandlerTestSuite provides integration tests for the
// tracking read model using PostgreSQL containers.
type GetOrderTrackingQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	tracker   *mockAggregateTracker
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)

	suite.tracker = new(mockAggregateTracker)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()
	handler := queries.NewGetOrderTrackingQueryHandler(suite.db, 30*time.Second)

	query, err := queries.NewGetOrderTrackingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_OrderWithoutDriver_OmitsPosition() {
	ctx := context.Background()
	handler := queries.NewGetOrderTrackingQueryHandler(suite.db, 30*time.Second)

	testOrder := suite.addTestOrder(order.Created, nil)

	query, err := queries.NewGetOrderTrackingQuery(testOrder.ID())
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), response.OrderID)
	suite.Equal(order.Created, response.Status)
	suite.Nil(response.DriverID)
	suite.Nil(response.DriverPoint)
	suite.Nil(response.DriverSeenAt)
	suite.False(response.PositionIsStale)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_FreshPosition_NotStale() {
	ctx := context.Background()
	handler := queries.NewGetOrderTrackingQueryHandler(suite.db, 30*time.Second)

	driverID := kernel.NewUUID()
	testOrder := suite.addTestOrder(order.OutForDelivery, &driverID)
	point := suite.publishPosition(testOrder.ID(), time.Now())

	query, err := queries.NewGetOrderTrackingQuery(testOrder.ID())
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(order.OutForDelivery, response.Status)
	suite.Require().NotNil(response.DriverID)
	suite.Equal(driverID, *response.DriverID)
	suite.Require().NotNil(response.DriverPoint)
	suite.InDelta(point.Latitude(), response.DriverPoint.Latitude(), 1e-9)
	suite.InDelta(point.Longitude(), response.DriverPoint.Longitude(), 1e-9)
	suite.False(response.PositionIsStale)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_StalenessFollowsConfiguredFreshness() {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	testOrder := suite.addTestOrder(order.OutForDelivery, &driverID)
	suite.publishPosition(testOrder.ID(), time.Now().Add(-10*time.Second))

	query, err := queries.NewGetOrderTrackingQuery(testOrder.ID())
	suite.Require().NoError(err)

	// The same row reads fresh or stale depending on the handler's window.
	lenient := queries.NewGetOrderTrackingQueryHandler(suite.db, 30*time.Second)
	response, err := lenient.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(response.PositionIsStale)

	strict := queries.NewGetOrderTrackingQueryHandler(suite.db, 2*time.Second)
	response, err = strict.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(response.PositionIsStale)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) addTestOrder(
	status order.Status, driverID *kernel.UUID,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		driverID,
		"12 Harbor Lane",
		2500,
		status,
		order.PaymentUnpaid,
		nil,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) publishPosition(
	orderID kernel.UUID, at time.Time,
) kernel.GeoPoint {
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	suite.Require().NoError(err)

	err = suite.orderRepo.UpdateDriverCoords(context.Background(), orderID, point, at)
	suite.Require().NoError(err)

	return point
}

func TestGetOrderTrackingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderTrackingQueryHandlerTestSuite))
}
