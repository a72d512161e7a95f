package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "quickcourier/internal/adapters/out/postgres"
	"quickcourier/internal/adapters/out/postgres/customerrepo"
	"quickcourier/internal/adapters/out/postgres/orderrepo"
	"quickcourier/internal/adapters/out/postgres/productrepo"
	"quickcourier/internal/adapters/out/postgres/shippingrepo"
	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/model/product"
	"quickcourier/internal/core/domain/model/shipping"
	"quickcourier/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// for all tests and runs the schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderExtraDTO{},
		&productrepo.ProductDTO{},
		&customerrepo.UserDTO{},
		&customerrepo.AddressDTO{},
		&shippingrepo.ShippingRuleDTO{},
		&shippingrepo.ShippingExtraDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_extras, products, users, addresses, shipping_rules, shipping_extras",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.ShippingRuleRepository())
	suite.NotNil(uow2.ShippingExtraRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderRoundTrip verifies that a fully priced order survives
// persistence: items, extras, rule code, and the recomputed totals.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createPricedOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.Number(), restored.Number())
	suite.Equal(order.StatusPending, restored.Status())
	suite.Len(restored.Items(), 2)
	suite.Len(restored.Extras(), 1)
	suite.True(testOrder.Subtotal().Equal(restored.Subtotal()))
	suite.True(testOrder.ShippingCost().Equal(restored.ShippingCost()))
	suite.True(testOrder.ExtrasCost().Equal(restored.ExtrasCost()))
	suite.True(testOrder.TaxAmount().Equal(restored.TaxAmount()))
	suite.True(testOrder.TotalAmount().Equal(restored.TotalAmount()))
	suite.Require().NotNil(restored.AppliedShippingRuleCode())
	suite.Equal("ZONE_NORTE", *restored.AppliedShippingRuleCode())

	restoredByNumber, err := suite.factory.Create().OrderRepository().GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restoredByNumber.ID())
}

// TestUnitOfWork_CheckoutTransaction verifies the order write and the stock
// decrement commit together, and roll back together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutTransaction() {
	ctx := context.Background()

	p, err := product.NewProduct("Coffee Beans 1kg", decimal.NewFromInt(10000), decimal.NewFromInt(1), 5)
	suite.Require().NoError(err)

	err = suite.factory.Create().ProductRepository().Add(ctx, p)
	suite.Require().NoError(err)

	// Committed checkout: order written, stock decremented.
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := suite.createOrderFor(p, 2)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = p.DecreaseStock(2)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Update(ctx, p)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(3, restored.StockQuantity())

	// Rolled back checkout: stock untouched.
	uow2 := suite.factory.Create()
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	secondOrder := suite.createOrderFor(restored, 1)
	err = uow2.OrderRepository().Add(ctx, secondOrder)
	suite.Require().NoError(err)

	err = restored.DecreaseStock(1)
	suite.Require().NoError(err)
	err = uow2.ProductRepository().Update(ctx, restored)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	afterRollback, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(3, afterRollback.StockQuantity())

	_, err = suite.factory.Create().OrderRepository().Get(ctx, secondOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_UpdateRewritesExtras verifies the wholesale extras
// replacement on update.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateRewritesExtras() {
	ctx := context.Background()

	testOrder := suite.createPricedOrder()
	repo := suite.factory.Create().OrderRepository()
	err := repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	express, err := order.NewOrderExtra("EXPRESS", "Entrega Exprés", decimal.NewFromInt(6000))
	suite.Require().NoError(err)
	fragile, err := order.NewOrderExtra("FRAGILE", "Manejo Frágil", decimal.NewFromInt(3000))
	suite.Require().NoError(err)
	err = testOrder.ReplaceExtras([]order.OrderExtra{express, fragile}, time.Now())
	suite.Require().NoError(err)

	err = repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Extras(), 2)
	suite.Equal("EXPRESS", restored.Extras()[0].Code())
	suite.Equal("FRAGILE", restored.Extras()[1].Code())
	suite.True(restored.ExtrasCost().Equal(decimal.NewFromInt(9000)))
}

// TestUnitOfWork_ShippingCatalogReads verifies rule filtering by validity
// window and extras resolution by code.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShippingCatalogReads() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ruleRepo, ok := uow.ShippingRuleRepository().(*shippingrepo.GormShippingRuleRepository)
	suite.Require().True(ok)

	now := time.Now()
	past := now.Add(-24 * time.Hour)

	activeRule, err := shipping.NewShippingRule("ZONE_NORTE", "Tarifa Norte", "FLAT_RATE_ZONE", 1,
		shipping.RuleConfig{"zone": "Norte", "flat_rate": 8000.0})
	suite.Require().NoError(err)
	err = ruleRepo.Add(ctx, activeRule)
	suite.Require().NoError(err)

	expiredRule, err := shipping.RestoreShippingRule(
		kernel.NewUUID(), "OLD_PROMO", "Promo vieja", "", "WEEKEND_PROMO", 2, true,
		shipping.RuleConfig{}, nil, &past)
	suite.Require().NoError(err)
	err = ruleRepo.Add(ctx, expiredRule)
	suite.Require().NoError(err)

	rules, err := uow.ShippingRuleRepository().GetActiveAndValid(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(rules, 1)
	suite.Equal("ZONE_NORTE", rules[0].Code())

	byCode, err := uow.ShippingRuleRepository().GetByCode(ctx, "OLD_PROMO")
	suite.Require().NoError(err)
	suite.Require().NotNil(byCode)
	suite.Equal("OLD_PROMO", byCode.Code())

	missing, err := uow.ShippingRuleRepository().GetByCode(ctx, "NOPE")
	suite.Require().NoError(err)
	suite.Nil(missing)

	extraRepo, ok := uow.ShippingExtraRepository().(*shippingrepo.GormShippingExtraRepository)
	suite.Require().True(ok)

	giftWrap, err := shipping.NewShippingExtra("GIFT_WRAP", "Empaque de Regalo",
		shipping.PriceTypeFixed, decimal.NewFromInt(8000), decimal.Zero)
	suite.Require().NoError(err)
	err = extraRepo.Add(ctx, giftWrap)
	suite.Require().NoError(err)

	inactive, err := shipping.RestoreShippingExtra(
		kernel.NewUUID(), "DISCONTINUED", "Ya no existe", "",
		shipping.PriceTypeFixed, decimal.NewFromInt(1000), decimal.Zero, false, 9)
	suite.Require().NoError(err)
	err = extraRepo.Add(ctx, inactive)
	suite.Require().NoError(err)

	extras, err := uow.ShippingExtraRepository().GetActiveByCodes(ctx,
		[]string{"DISCONTINUED", "GIFT_WRAP", "UNKNOWN"})
	suite.Require().NoError(err)
	suite.Require().Len(extras, 1, "Inactive and unknown codes should be absent")
	suite.Equal("GIFT_WRAP", extras[0].Code())
}

// TestUnitOfWork_CountByUser verifies the prior-order count used by the
// first-order promotion.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CountByUser() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	first := suite.createPricedOrder()
	err := repo.Add(ctx, first)
	suite.Require().NoError(err)

	count, err := repo.CountByUser(ctx, first.UserID())
	suite.Require().NoError(err)
	suite.Equal(1, count)

	count, err = repo.CountByUser(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(0, count)
}

// TestUnitOfWork_GetPendingOlderThan verifies stale pending order lookup for
// the expiry job.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetPendingOlderThan() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	stale := suite.createPricedOrder()
	err := repo.Add(ctx, stale)
	suite.Require().NoError(err)

	confirmed := suite.createPricedOrder()
	err = confirmed.Confirm(time.Now())
	suite.Require().NoError(err)
	err = repo.Add(ctx, confirmed)
	suite.Require().NoError(err)

	found, err := repo.GetPendingOlderThan(ctx, time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1, "Only pending orders should be returned")
	suite.Equal(stale.ID(), found[0].ID())

	none, err := repo.GetPendingOlderThan(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(none)
}

// createPricedOrder builds an order with two items, shipping from a zone
// rule, and one extra, the way checkout leaves it.
func (suite *UnitOfWorkIntegrationTestSuite) createPricedOrder() *order.Order {
	now := time.Now()

	item1, err := order.NewOrderItem(kernel.NewUUID(), "Coffee Beans 1kg", 2,
		decimal.NewFromInt(10000), decimal.NewFromInt(1))
	suite.Require().NoError(err)
	item2, err := order.NewOrderItem(kernel.NewUUID(), "Tea Box", 1,
		decimal.NewFromInt(5000), decimal.NewFromFloat(0.5))
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.GenerateNumber(now), kernel.NewUUID(), kernel.NewUUID(),
		[]order.OrderItem{item1, item2}, now)
	suite.Require().NoError(err)

	err = o.SetShipping(decimal.NewFromInt(8000), "ZONE_NORTE", now)
	suite.Require().NoError(err)

	giftWrap, err := order.NewOrderExtra("GIFT_WRAP", "Empaque de Regalo", decimal.NewFromInt(8000))
	suite.Require().NoError(err)
	err = o.ReplaceExtras([]order.OrderExtra{giftWrap}, now)
	suite.Require().NoError(err)

	return o
}

// createOrderFor builds a minimal pending order holding the given quantity
// of one product.
func (suite *UnitOfWorkIntegrationTestSuite) createOrderFor(p *product.Product, quantity int) *order.Order {
	now := time.Now()

	item, err := order.NewOrderItem(p.ID(), p.Name(), quantity, p.Price(), p.WeightKg())
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.GenerateNumber(now), kernel.NewUUID(), kernel.NewUUID(),
		[]order.OrderItem{item}, now)
	suite.Require().NoError(err)

	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
