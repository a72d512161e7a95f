package queries

import (
	"context"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler retrieves stale pending orders from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale pending
// order queries.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns pending orders created before the
// cutoff, oldest first.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]GetStalePendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetStalePendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			user_id,
			created_at
		FROM orders
		WHERE status = ?
		  AND created_at < ?
		ORDER BY created_at
	`, order.StatusPending.String(), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stale GetStalePendingOrdersQueryResponse
		var id, userID uuid.UUID

		if err = rows.Scan(&id, &stale.Number, &userID, &stale.CreatedAt); err != nil {
			return nil, err
		}

		if stale.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if stale.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		orders = append(orders, stale)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
