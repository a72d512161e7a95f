package cmd

import (
	"log/slog"

	"quickcourier/internal/adapters/out/postgres"
	"quickcourier/internal/core/application/usecases/commands"
	"quickcourier/internal/core/application/usecases/queries"
	"quickcourier/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	calculator *services.ShippingCalculator
	pricer     *services.OrderPricer
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	calculator, err := services.NewShippingCalculator(logger,
		services.NewWeightBasedStrategy(),
		services.NewWeekendPromoStrategy(),
		services.NewFlatRateZoneStrategy(),
		services.NewFirstOrderStrategy(),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: calculator,
		pricer:     services.NewOrderPricer(logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.calculator, c.pricer, c.logger)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartOrderTransitCommandHandler() commands.StartOrderTransitCommandHandler {
	return commands.NewStartOrderTransitCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRecalculateOrderExtrasCommandHandler() commands.RecalculateOrderExtrasCommandHandler {
	var f commands.OrderExtrasUoWFactory = FuncOrderExtrasUoWFactory(func() commands.OrderExtrasUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculateOrderExtrasCommandHandler(f, c.pricer, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShippingRulesQueryHandler() queries.GetActiveShippingRulesQueryHandler {
	return queries.NewGetActiveShippingRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShippingExtrasQueryHandler() queries.GetActiveShippingExtrasQueryHandler {
	return queries.NewGetActiveShippingExtrasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePendingOrdersQueryHandler() queries.GetStalePendingOrdersQueryHandler {
	return queries.NewGetStalePendingOrdersQueryHandler(c.gormDB)
}

// CreateCalculateShippingQueryHandler wires the quote handler against
// auto-committing repositories. Quotes never write, so no transaction is
// needed.
func (c *CompositionRoot) CreateCalculateShippingQueryHandler() queries.CalculateShippingQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewCalculateShippingQueryHandler(
		uow.OrderRepository(),
		uow.ProductRepository(),
		uow.AddressRepository(),
		uow.ShippingRuleRepository(),
		uow.ShippingExtraRepository(),
		c.calculator,
		c.pricer,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncOrderExtrasUoWFactory func() commands.OrderExtrasUoW

func (f FuncOrderExtrasUoWFactory) Create() commands.OrderExtrasUoW {
	return f()
}
