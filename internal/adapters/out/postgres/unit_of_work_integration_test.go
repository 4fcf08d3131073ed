package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/offerrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/quoterepo"
	"marketplace/internal/adapters/out/postgres/quoterequestrepo"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []kernel.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events []kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) All() []kernel.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kernel.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *recordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
		&quoterequestrepo.QuoteRequestDTO{},
		&quoterepo.QuoteDTO{}, &quoterepo.QuoteLineDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&offerrepo.OfferDTO{}, &offerrepo.OfferItemDTO{},
	)
	suite.Require().NoError(err)

	suite.publisher = &recordingPublisher{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, suite.publisher)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE carts, cart_items, quote_requests, quotes, quote_lines, orders, payments, offers, offer_items",
	).Error
	suite.Require().NoError(err)
	suite.publisher.Reset()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesEventsAfterCommit() {
	ctx := context.Background()

	ownerCart, err := cart.NewCart(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(ownerCart.AddItem(kernel.NewUUID(), 2, kernel.JsonSpec{}))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, ownerCart))

	suite.Empty(suite.publisher.All(), "events must not be published before commit")

	suite.Require().NoError(uow.Commit(ctx))

	events := suite.publisher.All()
	suite.Require().NotEmpty(events)
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.EventName())
	}
	suite.Contains(names, "cart.created")
	suite.Contains(names, "cart.item_added")

	suite.Empty(ownerCart.PendingEvents(), "events must be drained after publication")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsRowAndEvents() {
	ctx := context.Background()

	ownerCart, err := cart.NewCart(kernel.NewUUID())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, ownerCart))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(suite.publisher.All())
	suite.Empty(ownerCart.PendingEvents())

	reader := suite.factory.Create()
	_, err = reader.CartRepository().Get(ctx, ownerCart.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepository_SingleTransaction() {
	ctx := context.Background()

	ownerCart, err := cart.NewCart(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(ownerCart.AddItem(kernel.NewUUID(), 1, kernel.JsonSpec{}))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, ownerCart))
	suite.Require().NoError(ownerCart.Lock())
	suite.Require().NoError(uow.CartRepository().Update(ctx, ownerCart))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().CartRepository().Get(ctx, ownerCart.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsLocked())
	suite.Equal(1, loaded.TotalItems())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
