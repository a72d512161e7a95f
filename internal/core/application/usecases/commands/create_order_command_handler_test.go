package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"quickcourier/internal/core/application/usecases/commands"
	"quickcourier/internal/core/domain/model/customer"
	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/order"
	"quickcourier/internal/core/domain/model/product"
	"quickcourier/internal/core/domain/model/shipping"
	"quickcourier/internal/core/domain/services"
	"quickcourier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCalculator(t *testing.T) *services.ShippingCalculator {
	t.Helper()
	calc, err := services.NewShippingCalculator(testLogger(),
		services.NewWeightBasedStrategy(),
		services.NewWeekendPromoStrategy(),
		services.NewFlatRateZoneStrategy(),
		services.NewFirstOrderStrategy(),
	)
	require.NoError(t, err)
	return calc
}

type checkoutFixture struct {
	userID    kernel.UUID
	addressID kernel.UUID
	productID kernel.UUID

	user    *customer.User
	address *customer.Address
	product *product.Product
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()

	f := checkoutFixture{
		userID:    kernel.NewUUID(),
		addressID: kernel.NewUUID(),
		productID: kernel.NewUUID(),
	}

	var err error
	f.user, err = customer.RestoreUser(f.userID, "ana@example.com", "Ana", customer.RoleCustomer, true)
	require.NoError(t, err)

	f.address, err = customer.RestoreAddress(f.addressID, f.userID, "Calle 10 #20-30", "Medellin", "Norte")
	require.NoError(t, err)

	f.product, err = product.RestoreProduct(
		f.productID, "Coffee Beans 1kg",
		decimal.NewFromInt(10000), decimal.NewFromInt(1), true, 5)
	require.NoError(t, err)

	return f
}

func newCheckoutHandler(t *testing.T, factory commands.CheckoutUoWFactory) commands.CreateOrderCommandHandler {
	t.Helper()
	return commands.NewCreateOrderCommandHandler(
		factory, testCalculator(t), services.NewOrderPricer(testLogger()), testLogger())
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 2}}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	addressRepo := new(MockAddressRepository)
	ruleRepo := new(MockShippingRuleRepository)

	flatRate, err := shipping.NewShippingRule("ZONE_NORTE", "Tarifa Norte", "FLAT_RATE_ZONE", 1,
		shipping.RuleConfig{"zone": "Norte", "flat_rate": 8000.0})
	require.NoError(t, err)

	uow := new(MockCheckoutUoW)
	uow.On("UserRepository").Return(userRepo)
	uow.On("AddressRepository").Return(addressRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ShippingRuleRepository").Return(ruleRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, f.userID).Return(f.user, nil).Once(),
		addressRepo.On("Get", ctx, f.addressID).Return(f.address, nil).Once(),
		productRepo.On("Get", ctx, f.productID).Return(f.product, nil).Once(),
		orderRepo.On("CountByUser", ctx, f.userID).Return(3, nil).Once(),
		ruleRepo.On("GetActiveAndValid", ctx, mock.AnythingOfType("time.Time")).
			Return([]*shipping.ShippingRule{flatRate}, nil).Once(),
		productRepo.On("GetForUpdate", ctx, f.productID).Return(f.product, nil).Once(),
		productRepo.On("Update", ctx, f.product).Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	// 2 x 10000 subtotal, 8000 zone flat rate, 19% tax on 28000.
	assert.True(t, created.Subtotal().Equal(decimal.NewFromInt(20000)))
	assert.True(t, created.ShippingCost().Equal(decimal.NewFromInt(8000)))
	assert.True(t, created.TaxAmount().Equal(decimal.NewFromInt(5320)))
	assert.True(t, created.TotalAmount().Equal(decimal.NewFromInt(33320)))
	require.NotNil(t, created.AppliedShippingRuleCode())
	assert.Equal(t, "ZONE_NORTE", *created.AppliedShippingRuleCode())
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, 3, f.product.StockQuantity())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_WithExtras(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 2}},
		[]string{"GIFT_WRAP"})
	require.NoError(t, err)

	giftWrap, err := shipping.NewShippingExtra("GIFT_WRAP", "Empaque de Regalo",
		shipping.PriceTypeFixed, decimal.NewFromInt(8000), decimal.Zero)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	addressRepo := new(MockAddressRepository)
	ruleRepo := new(MockShippingRuleRepository)
	extraRepo := new(MockShippingExtraRepository)

	uow := new(MockCheckoutUoW)
	uow.On("UserRepository").Return(userRepo)
	uow.On("AddressRepository").Return(addressRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ShippingRuleRepository").Return(ruleRepo)
	uow.On("ShippingExtraRepository").Return(extraRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	userRepo.On("Get", ctx, f.userID).Return(f.user, nil)
	addressRepo.On("Get", ctx, f.addressID).Return(f.address, nil)
	productRepo.On("Get", ctx, f.productID).Return(f.product, nil)
	productRepo.On("GetForUpdate", ctx, f.productID).Return(f.product, nil)
	productRepo.On("Update", ctx, f.product).Return(nil)
	orderRepo.On("CountByUser", ctx, f.userID).Return(1, nil)
	ruleRepo.On("GetActiveAndValid", ctx, mock.AnythingOfType("time.Time")).
		Return([]*shipping.ShippingRule{}, nil)
	extraRepo.On("GetActiveByCodes", ctx, []string{"GIFT_WRAP"}).
		Return([]*shipping.ShippingExtra{giftWrap}, nil)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// No rule matches: standard 10000 shipping. Extras add 8000.
	// 20000 + 10000 + 8000 = 38000 base, 19% tax = 7220.
	assert.True(t, created.ShippingCost().Equal(decimal.NewFromInt(10000)))
	assert.True(t, created.ExtrasCost().Equal(decimal.NewFromInt(8000)))
	assert.True(t, created.TotalAmount().Equal(decimal.NewFromInt(45220)))
	assert.Nil(t, created.AppliedShippingRuleCode())
	require.Len(t, created.Extras(), 1)
	assert.Equal(t, "GIFT_WRAP", created.Extras()[0].Code())
}

func TestCreateOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 1}}, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, f.userID).
		Return(nil, errs.NewObjectNotFoundError("user", f.userID.String()))

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveUser(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	inactive, err := customer.RestoreUser(f.userID, "ana@example.com", "Ana", customer.RoleCustomer, false)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 1}}, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, f.userID).Return(inactive, nil)

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateOrderCommandHandler_Handle_AddressOfAnotherUser(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	foreign, err := customer.RestoreAddress(f.addressID, kernel.NewUUID(), "Calle 1", "Bogota", "Sur")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 1}}, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, f.userID).Return(f.user, nil)
	addressRepo := new(MockAddressRepository)
	addressRepo.On("Get", ctx, f.addressID).Return(foreign, nil)

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("AddressRepository").Return(addressRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 6}}, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", ctx, f.userID).Return(f.user, nil)
	addressRepo := new(MockAddressRepository)
	addressRepo.On("Get", ctx, f.addressID).Return(f.address, nil)
	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, f.productID).Return(f.product, nil)

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("AddressRepository").Return(addressRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(t, factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	var stockErr *errs.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 6, stockErr.Requested)

	// Stock must be untouched when validation fails.
	assert.Equal(t, 5, f.product.StockQuantity())
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := newCheckoutHandler(t, factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture(t)

	cmd, err := commands.NewCreateOrderCommand(f.userID, f.addressID,
		[]commands.OrderItemInput{{ProductID: f.productID, Quantity: 1}}, nil)
	require.NoError(t, err)

	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := newCheckoutHandler(t, factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
