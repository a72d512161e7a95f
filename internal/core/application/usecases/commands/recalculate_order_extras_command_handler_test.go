package commands_test

import (
	"testing"
	"time"

	"quickcourier/internal/core/application/usecases/commands"
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

func newRecalculateHandler(factory commands.OrderExtrasUoWFactory) commands.RecalculateOrderExtrasCommandHandler {
	return commands.NewRecalculateOrderExtrasCommandHandler(
		factory, services.NewOrderPricer(testLogger()), testLogger())
}

func TestRecalculateOrderExtrasCommandHandler_Handle_ReplacesSelection(t *testing.T) {
	ctx := t.Context()

	p, err := product.NewProduct("Coffee Beans 1kg", decimal.NewFromInt(10000), decimal.NewFromInt(1), 10)
	require.NoError(t, err)
	o := newPendingOrder(t, p) // subtotal 20000

	giftWrap, err := shipping.NewShippingExtra("GIFT_WRAP", "Empaque de Regalo",
		shipping.PriceTypeFixed, decimal.NewFromInt(8000), decimal.Zero)
	require.NoError(t, err)
	insurance, err := shipping.NewShippingExtra("INSURANCE", "Seguro",
		shipping.PriceTypePercentage, decimal.Zero, decimal.NewFromInt(5))
	require.NoError(t, err)

	cmd, err := commands.NewRecalculateOrderExtrasCommand(o.ID(), o.UserID(), []string{"GIFT_WRAP", "INSURANCE"})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	extraRepo := new(MockShippingExtraRepository)

	uow := new(MockOrderExtrasUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ShippingExtraRepository").Return(extraRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		extraRepo.On("GetActiveByCodes", ctx, []string{"GIFT_WRAP", "INSURANCE"}).
			Return([]*shipping.ShippingExtra{giftWrap, insurance}, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderExtrasUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRecalculateHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// 8000 fixed + 5% of the 20000 subtotal.
	assert.True(t, updated.ExtrasCost().Equal(decimal.NewFromInt(9000)))
	require.Len(t, updated.Extras(), 2)
	assert.Equal(t, "GIFT_WRAP", updated.Extras()[0].Code())
	assert.Equal(t, "INSURANCE", updated.Extras()[1].Code())
	// 20000 + 0 shipping + 9000 extras, 19% tax on 29000.
	assert.True(t, updated.TaxAmount().Equal(decimal.NewFromInt(5510)))
	assert.True(t, updated.TotalAmount().Equal(decimal.NewFromInt(34510)))
	orderRepo.AssertExpectations(t)
	extraRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecalculateOrderExtrasCommandHandler_Handle_EmptySelectionClears(t *testing.T) {
	ctx := t.Context()

	p, err := product.NewProduct("Coffee Beans 1kg", decimal.NewFromInt(10000), decimal.NewFromInt(1), 10)
	require.NoError(t, err)
	o := newPendingOrder(t, p)

	gift, err := order.NewOrderExtra("GIFT_WRAP", "Empaque de Regalo", decimal.NewFromInt(8000))
	require.NoError(t, err)
	require.NoError(t, o.ReplaceExtras([]order.OrderExtra{gift}, time.Now()))

	cmd, err := commands.NewRecalculateOrderExtrasCommand(o.ID(), o.UserID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)
	orderRepo.On("Update", ctx, o).Return(nil)

	uow := new(MockOrderExtrasUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockOrderExtrasUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRecalculateHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, updated.Extras())
	assert.True(t, updated.ExtrasCost().IsZero())
}

func TestRecalculateOrderExtrasCommandHandler_Handle_ImmutableOrder(t *testing.T) {
	ctx := t.Context()

	p, err := product.NewProduct("Coffee Beans 1kg", decimal.NewFromInt(10000), decimal.NewFromInt(1), 10)
	require.NoError(t, err)
	o := newPendingOrder(t, p)
	now := time.Now()
	require.NoError(t, o.Confirm(now))
	require.NoError(t, o.StartTransit(now))

	giftWrap, err := shipping.NewShippingExtra("GIFT_WRAP", "Empaque de Regalo",
		shipping.PriceTypeFixed, decimal.NewFromInt(8000), decimal.Zero)
	require.NoError(t, err)

	cmd, err := commands.NewRecalculateOrderExtrasCommand(o.ID(), o.UserID(), []string{"GIFT_WRAP"})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)
	extraRepo := new(MockShippingExtraRepository)
	extraRepo.On("GetActiveByCodes", ctx, []string{"GIFT_WRAP"}).
		Return([]*shipping.ShippingExtra{giftWrap}, nil)

	uow := new(MockOrderExtrasUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ShippingExtraRepository").Return(extraRepo)

	factory := new(MockOrderExtrasUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRecalculateHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecalculateOrderExtrasCommandHandler_Handle_ForeignUser(t *testing.T) {
	ctx := t.Context()

	p, err := product.NewProduct("Coffee Beans 1kg", decimal.NewFromInt(10000), decimal.NewFromInt(1), 10)
	require.NoError(t, err)
	o := newPendingOrder(t, p)

	cmd, err := commands.NewRecalculateOrderExtrasCommand(o.ID(), kernel.NewUUID(), []string{"GIFT_WRAP"})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)

	uow := new(MockOrderExtrasUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockOrderExtrasUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newRecalculateHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Empty(t, o.Extras())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewRecalculateOrderExtrasCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecalculateOrderExtrasCommand(kernel.UUID{}, kernel.NewUUID(), []string{"GIFT_WRAP"})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
