package queries

import (
	"context"
	"database/sql"
	"errors"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its items and extras.
// Returns an ObjectNotFoundError when the order does not exist and a
// ConflictError when it belongs to another user.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !response.UserID.IsEqual(query.UserID()) {
		return nil, errs.NewConflictError("order does not belong to the requesting user")
	}

	if err = h.loadItems(ctx, response); err != nil {
		return nil, err
	}

	if err = h.loadExtras(ctx, response); err != nil {
		return nil, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse
	var id, userID, addressID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			user_id,
			address_id,
			status,
			payment_status,
			subtotal,
			shipping_cost,
			extras_cost,
			tax_rate,
			tax_amount,
			total_amount,
			total_weight_kg,
			applied_shipping_rule_code,
			created_at,
			updated_at,
			confirmed_at,
			delivered_at,
			cancelled_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	err := row.Scan(
		&id,
		&response.Number,
		&userID,
		&addressID,
		&response.Status,
		&response.PaymentStatus,
		&response.Subtotal,
		&response.ShippingCost,
		&response.ExtrasCost,
		&response.TaxRate,
		&response.TaxAmount,
		&response.TotalAmount,
		&response.TotalWeightKg,
		&response.AppliedShippingRuleCode,
		&response.CreatedAt,
		&response.UpdatedAt,
		&response.ConfirmedAt,
		&response.DeliveredAt,
		&response.CancelledAt,
	)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return nil, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return nil, err
	}
	if response.AddressID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
		return nil, err
	}

	return &response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, response *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price,
			subtotal,
			weight_kg
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, response.ID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	response.Items = make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var item GetOrderItemResponse
		var productID uuid.UUID

		if err = rows.Scan(
			&productID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.WeightKg,
		); err != nil {
			return err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		response.Items = append(response.Items, item)
	}

	return rows.Err()
}

func (h GetOrderQueryHandler) loadExtras(ctx context.Context, response *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			applied_price
		FROM order_extras
		WHERE order_id = ?
		ORDER BY position
	`, response.ID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	response.Extras = make([]GetOrderExtraResponse, 0)
	for rows.Next() {
		var extra GetOrderExtraResponse
		if err = rows.Scan(&extra.Code, &extra.Name, &extra.AppliedPrice); err != nil {
			return err
		}
		response.Extras = append(response.Extras, extra)
	}

	return rows.Err()
}
