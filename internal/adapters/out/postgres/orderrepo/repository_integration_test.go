package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.HistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_RoundTrips() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restored.ID())
	suite.Equal(testOrder.OrderNumber().String(), restored.OrderNumber().String())
	suite.Equal(order.StatusNew, restored.Status())
	suite.Len(restored.Items(), 2)
	suite.Len(restored.History(), 1)
	suite.Nil(restored.History()[0].FromStatus())
	suite.Equal(order.StatusNew, restored.History()[0].ToStatus())

	// Line totals come back as stored, not recomputed.
	suite.Equal("20.00", restored.Items()[0].LineTotal().String())
	suite.Equal("5.00", restored.Items()[1].LineTotal().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReportsCollision() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	number := order.GenerateOrderNumber(now)

	first := suite.createTestOrderWithNumber(number, now)
	second := suite.createTestOrderWithNumber(number, now)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrDuplicateOrderNumber)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Transition_PersistsStatusAndHistory() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	changed, err := testOrder.TransitionTo(order.StatusConfirmed, "operator-7", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, restored.Status())
	suite.Require().Len(restored.History(), 2)
	suite.Equal("operator-7", restored.History()[1].ChangedBy())
	suite.Equal(order.StatusConfirmed, restored.History()[1].ToStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Fails() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two loads of the same order race; the second write must lose.
	winner, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	loser, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = winner.TransitionTo(order.StatusConfirmed, "operator-1", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, winner))

	_, err = loser.TransitionTo(order.StatusCancelled, "operator-2", "changed my mind", time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, loser)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_FindsOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.GetByNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restored.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder()
	second := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	_, err := second.TransitionTo(order.StatusConfirmed, "operator-1", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, second))

	newOrders, err := suite.repository.GetAllInStatus(ctx, order.StatusNew)
	suite.Require().NoError(err)
	suite.Require().Len(newOrders, 1)
	suite.Equal(first.ID(), newOrders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return suite.createTestOrderWithNumber(order.GenerateOrderNumber(now), now)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithNumber(
	number order.OrderNumber,
	now time.Time,
) *order.Order {
	priceTen, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	priceFive, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	widget, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "SKU-001", "Widget", priceTen, 2)
	suite.Require().NoError(err)
	gadget, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "SKU-002", "Gadget", priceFive, 1)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(),
		[]*order.Item{widget, gadget}, order.PriorityNormal, "", now)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
