// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"quickcourier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CustomerRepoFactory provides access to user and address repositories
	// within a transaction.
	CustomerRepoFactory interface {
		UserRepository() ports.UserRepository
		AddressRepository() ports.AddressRepository
	}

	// ShippingRepoFactory provides access to the shipping rule and extra
	// catalogs within a transaction.
	ShippingRepoFactory interface {
		ShippingRuleRepository() ports.ShippingRuleRepository
		ShippingExtraRepository() ports.ShippingExtraRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the plain status transitions (confirm, transit, deliver, pay).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderStockUoW manages transactions that touch orders and product
	// stock together. Cancellation restores stock in the same transaction
	// that flips the order status.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderStockUoWFactory creates new order+stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// OrderExtrasUoW manages transactions for extras recalculation: the
	// order write plus read access to the extras catalog.
	OrderExtrasUoW interface {
		TxManager
		OrderRepoFactory
		ShippingRepoFactory
	}

	// OrderExtrasUoWFactory creates new order+extras unit of work instances.
	OrderExtrasUoWFactory interface {
		Create() OrderExtrasUoW
	}

	// CheckoutUoW manages the order creation transaction, which spans
	// every aggregate the orchestrator consults: the order itself, product
	// stock, the customer records, and the shipping catalogs. A failure
	// anywhere must leave stock untouched.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CustomerRepoFactory
		ShippingRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
