// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and extras live in child tables keyed by the order ID; totals are
// stored alongside the components they derive from so read models never
// recompute them.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"uniqueIndex;size:32"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	AddressID uuid.UUID `gorm:"type:uuid"`

	Status        string `gorm:"size:16;index"`
	PaymentStatus string `gorm:"size:16"`

	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2)"`
	ShippingCost  decimal.Decimal `gorm:"type:numeric(14,2)"`
	ExtrasCost    decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxRate       decimal.Decimal `gorm:"type:numeric(5,2)"`
	TaxAmount     decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalWeightKg decimal.Decimal `gorm:"type:numeric(10,3)"`

	AppliedShippingRuleCode *string `gorm:"size:64"`

	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	Items  []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Extras []OrderExtraDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one immutable product snapshot line of an order.
type OrderItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	ProductID   uuid.UUID       `gorm:"type:uuid"`
	ProductName string          `gorm:"size:255"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(14,2)"`
	WeightKg    decimal.Decimal `gorm:"type:numeric(10,3)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderExtraDTO is one applied extra snapshot of an order.
type OrderExtraDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Position     int
	Code         string          `gorm:"size:64"`
	Name         string          `gorm:"size:255"`
	AppliedPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming to use "order_extras".
func (OrderExtraDTO) TableName() string {
	return "order_extras"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			Position:    i,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			WeightKg:    item.WeightKg(),
		})
	}

	extras := make([]OrderExtraDTO, 0, len(aggregate.Extras()))
	for i, extra := range aggregate.Extras() {
		extras = append(extras, OrderExtraDTO{
			OrderID:      aggregate.ID().Bytes(),
			Position:     i,
			Code:         extra.Code(),
			Name:         extra.Name(),
			AppliedPrice: extra.AppliedPrice(),
		})
	}

	return OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		Number:                  aggregate.Number(),
		UserID:                  aggregate.UserID().Bytes(),
		AddressID:               aggregate.AddressID().Bytes(),
		Status:                  aggregate.Status().String(),
		PaymentStatus:           aggregate.PaymentStatus().String(),
		Subtotal:                aggregate.Subtotal(),
		ShippingCost:            aggregate.ShippingCost(),
		ExtrasCost:              aggregate.ExtrasCost(),
		TaxRate:                 aggregate.TaxRate(),
		TaxAmount:               aggregate.TaxAmount(),
		TotalAmount:             aggregate.TotalAmount(),
		TotalWeightKg:           aggregate.TotalWeightKg(),
		AppliedShippingRuleCode: aggregate.AppliedShippingRuleCode(),
		CreatedAt:               aggregate.CreatedAt(),
		UpdatedAt:               aggregate.UpdatedAt(),
		ConfirmedAt:             aggregate.ConfirmedAt(),
		DeliveredAt:             aggregate.DeliveredAt(),
		CancelledAt:             aggregate.CancelledAt(),
		Items:                   items,
		Extras:                  extras,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// RestoreOrder recomputes the derived totals from the persisted components.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewOrderItem(
			productID, itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.WeightKg)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	extras := make([]order.OrderExtra, 0, len(dto.Extras))
	for _, extraDTO := range dto.Extras {
		extra, extraErr := order.NewOrderExtra(extraDTO.Code, extraDTO.Name, extraDTO.AppliedPrice)
		if extraErr != nil {
			return nil, extraErr
		}
		extras = append(extras, extra)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                      id,
		Number:                  dto.Number,
		UserID:                  userID,
		AddressID:               addressID,
		Status:                  status,
		PaymentStatus:           paymentStatus,
		Items:                   items,
		Extras:                  extras,
		ShippingCost:            dto.ShippingCost,
		TaxRate:                 dto.TaxRate,
		AppliedShippingRuleCode: dto.AppliedShippingRuleCode,
		CreatedAt:               dto.CreatedAt,
		UpdatedAt:               dto.UpdatedAt,
		ConfirmedAt:             dto.ConfirmedAt,
		DeliveredAt:             dto.DeliveredAt,
		CancelledAt:             dto.CancelledAt,
	})
}
