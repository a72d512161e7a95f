package queries

import (
	"context"

	"quickcourier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShippingExtrasQueryHandler retrieves the active shipping extras
// from the database, sorted by display order.
type GetActiveShippingExtrasQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShippingExtrasQueryHandler creates a handler for shipping
// extra listing queries.
func NewGetActiveShippingExtrasQueryHandler(db *gorm.DB) GetActiveShippingExtrasQueryHandler {
	return GetActiveShippingExtrasQueryHandler{db: db}
}

// Handle executes the query.
func (h GetActiveShippingExtrasQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShippingExtrasQuery,
) ([]GetActiveShippingExtrasQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	extras := make([]GetActiveShippingExtrasQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			description,
			price_type,
			base_price,
			percentage_value,
			display_order
		FROM shipping_extras
		WHERE is_active = true
		ORDER BY display_order
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var extra GetActiveShippingExtrasQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&extra.Code,
			&extra.Name,
			&extra.Description,
			&extra.PriceType,
			&extra.BasePrice,
			&extra.PercentageValue,
			&extra.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}

		extraID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		extra.ID = extraID
		extras = append(extras, extra)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return extras, nil
}
