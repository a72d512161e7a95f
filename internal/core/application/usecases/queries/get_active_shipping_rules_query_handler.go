package queries

import (
	"context"

	"quickcourier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShippingRulesQueryHandler retrieves the active shipping rules
// from the database, sorted the way the selector evaluates them.
type GetActiveShippingRulesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShippingRulesQueryHandler creates a handler for shipping rule
// listing queries.
func NewGetActiveShippingRulesQueryHandler(db *gorm.DB) GetActiveShippingRulesQueryHandler {
	return GetActiveShippingRulesQueryHandler{db: db}
}

// Handle executes the query. Returns the rules active and valid at the
// queried instant, ascending by priority.
func (h GetActiveShippingRulesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShippingRulesQuery,
) ([]GetActiveShippingRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules := make([]GetActiveShippingRulesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			description,
			rule_type,
			priority,
			valid_from,
			valid_until
		FROM shipping_rules
		WHERE is_active = true
		  AND (valid_from IS NULL OR valid_from <= ?)
		  AND (valid_until IS NULL OR valid_until >= ?)
		ORDER BY priority, created_at
	`, query.At(), query.At()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rule GetActiveShippingRulesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&rule.Code,
			&rule.Name,
			&rule.Description,
			&rule.RuleType,
			&rule.Priority,
			&rule.ValidFrom,
			&rule.ValidUntil,
		)
		if err != nil {
			return nil, err
		}

		ruleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rule.ID = ruleID
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
