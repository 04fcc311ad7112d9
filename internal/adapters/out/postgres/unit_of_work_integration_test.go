package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/chatrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/chat"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&outboxrepo.EventDTO{},
		&userrepo.UserDTO{},
		&reviewrepo.ReviewDTO{},
		&chatrepo.SessionDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_events, users, reviews, chat_sessions").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.OutboxRepository(), "First instance should provide outbox repository")
	suite.NotNil(uow2.UserRepository(), "Second instance should provide user repository")
	suite.NotNil(uow2.ReviewRepository(), "Second instance should provide review repository")
	suite.NotNil(uow2.ChatRepository(), "Second instance should provide chat repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_CommitWithoutBegin verifies commit and rollback fail cleanly
// when no transaction is active.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_OrderAndEventCommitTogether verifies the outbox contract:
// the order write and its lifecycle event land in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderAndEventCommitTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	event := order.NewPlacedEvent(testOrder.ID(), time.Now())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, event))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&outboxrepo.EventDTO{}, 1)

	pending, err := suite.factory.Create().OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(testOrder.ID(), pending[0].OrderID)
	suite.Equal(order.EventOrderPlaced, pending[0].Kind)
}

// TestUnitOfWork_RollbackDiscardsBothWrites verifies no partial state survives
// a rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsBothWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	event := order.NewPlacedEvent(testOrder.ID(), time.Now())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, event))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&outboxrepo.EventDTO{}, 0)
}

// TestUnitOfWork_MarkDispatchedIsConditional verifies an event can be marked
// dispatched exactly once.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MarkDispatchedIsConditional() {
	ctx := context.Background()
	uow := suite.factory.Create()

	event := order.NewPlacedEvent(kernel.NewUUID(), time.Now())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, event))
	suite.Require().NoError(uow.OutboxRepository().MarkDispatched(ctx, event))
	suite.Require().NoError(uow.Commit(ctx))

	// Marked events are no longer pending
	pending, err := suite.factory.Create().OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)

	// A second mark finds no matching row
	secondUow := suite.factory.Create()
	suite.Require().NoError(secondUow.Begin(ctx))
	err = secondUow.OutboxRepository().MarkDispatched(ctx, event)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Require().NoError(secondUow.Rollback(ctx))
}

// TestUnitOfWork_DuplicateReviewRollsBack verifies the unique review
// constraint surfaces as the domain error and aborts cleanly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateReviewRollsBack() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	authorID := kernel.NewUUID()
	subjectID := kernel.NewUUID()

	first, err := review.NewReview(kernel.NewUUID(), orderID, subjectID, authorID, 5, "great")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ReviewRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	duplicate, err := review.NewReview(kernel.NewUUID(), orderID, subjectID, authorID, 1, "changed my mind")
	suite.Require().NoError(err)

	secondUow := suite.factory.Create()
	suite.Require().NoError(secondUow.Begin(ctx))
	err = secondUow.ReviewRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, review.ErrAlreadyReviewed)
	suite.Require().NoError(secondUow.Rollback(ctx))

	suite.assertCount(&reviewrepo.ReviewDTO{}, 1)
}

// TestUnitOfWork_ChatEnsureIsIdempotent verifies concurrent first contact
// cannot create two sessions for the same buyer/store pair.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ChatEnsureIsIdempotent() {
	ctx := context.Background()

	buyerID := kernel.NewUUID()
	storeID := kernel.NewUUID()

	session, err := chat.NewSession(buyerID, storeID)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	created, err := uow.ChatRepository().Ensure(ctx, session)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	again, err := chat.NewSession(buyerID, storeID)
	suite.Require().NoError(err)

	secondUow := suite.factory.Create()
	suite.Require().NoError(secondUow.Begin(ctx))
	existing, err := secondUow.ChatRepository().Ensure(ctx, again)
	suite.Require().NoError(err)
	suite.Require().NoError(secondUow.Commit(ctx))

	suite.Equal(created.ID(), existing.ID())
	suite.assertCount(&chatrepo.SessionDTO{}, 1)
}

// TestUnitOfWork_UserTokenRoundTrip verifies push token persistence through
// the user repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UserTokenRoundTrip() {
	ctx := context.Background()

	token := "device-token-1"
	testUser, err := user.NewUser(kernel.NewUUID(), "Maya", order.RoleBuyer, &token)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().UserRepository().Get(ctx, testUser.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.PushToken())
	suite.Equal(token, *stored.PushToken())
}

// TestUnitOfWork_ConcurrentClaim verifies the row lock serializes competing
// driver claims: the loser sees the winner's driver and is rejected.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentClaim() {
	ctx := context.Background()

	preparingOrder := suite.createTestOrderWithStatus(order.Preparing)
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.Begin(ctx))
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, preparingOrder))
	suite.Require().NoError(setupUow.Commit(ctx))

	claim := func(driverID kernel.UUID) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() { _ = uow.Rollback(ctx) }()

		aggregate, err := uow.OrderRepository().GetForUpdate(ctx, preparingOrder.ID())
		if err != nil {
			return err
		}

		actor, err := order.NewActor(driverID, order.RoleDriver)
		if err != nil {
			return err
		}

		if _, err = aggregate.Advance(order.OutForDelivery, actor); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	winner := kernel.NewUUID()
	loser := kernel.NewUUID()

	suite.Require().NoError(claim(winner))
	suite.Require().ErrorIs(claim(loser), order.ErrAlreadyClaimed)

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, preparingOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.DriverID())
	suite.True(stored.DriverID().IsEqual(winner))
}

// createTestOrder creates a basic test order with default values.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Harbor Lane",
		2500,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderWithStatus creates a test order restored into the given status.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrderWithStatus(status order.Status) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		"12 Harbor Lane",
		2500,
		status,
		order.PaymentUnpaid,
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertCount verifies the number of rows for a model.
func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
