package shippingrepo

import (
	"context"
	"errors"
	"time"

	"quickcourier/internal/core/domain/model/shipping"
	"quickcourier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShippingRuleRepository implements ShippingRuleRepository using GORM.
type GormShippingRuleRepository struct {
	db *gorm.DB
}

// NewGormShippingRuleRepository creates a new GORM shipping rule repository.
func NewGormShippingRuleRepository(db *gorm.DB) *GormShippingRuleRepository {
	return &GormShippingRuleRepository{db: db}
}

// Add saves a new rule. Used by seeding and administrative tooling; the
// pricing flows only read rules.
func (r *GormShippingRuleRepository) Add(ctx context.Context, rule *shipping.ShippingRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetActiveAndValid retrieves the rules active and valid at the given
// instant, ascending by priority with insertion order as tiebreaker.
func (r *GormShippingRuleRepository) GetActiveAndValid(
	ctx context.Context,
	at time.Time,
) ([]*shipping.ShippingRule, error) {
	var dtos []ShippingRuleDTO
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Where("valid_from IS NULL OR valid_from <= ?", at).
		Where("valid_until IS NULL OR valid_until >= ?", at).
		Order("priority, created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*shipping.ShippingRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := ruleToDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// GetByCode retrieves one rule by code, regardless of active flag or
// validity window.
func (r *GormShippingRuleRepository) GetByCode(ctx context.Context, code string) (*shipping.ShippingRule, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto ShippingRuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return ruleToDomain(dto)
}

// GormShippingExtraRepository implements ShippingExtraRepository using GORM.
type GormShippingExtraRepository struct {
	db *gorm.DB
}

// NewGormShippingExtraRepository creates a new GORM shipping extra repository.
func NewGormShippingExtraRepository(db *gorm.DB) *GormShippingExtraRepository {
	return &GormShippingExtraRepository{db: db}
}

// Add saves a new extra. Used by seeding and administrative tooling.
func (r *GormShippingExtraRepository) Add(ctx context.Context, extra *shipping.ShippingExtra) error {
	if err := extra.Validate(); err != nil {
		return err
	}

	dto := extraFromDomain(extra)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetActiveByCodes retrieves the active extras matching the given codes,
// preserving the order the codes were supplied in. Unknown or inactive
// codes are simply absent from the result.
func (r *GormShippingExtraRepository) GetActiveByCodes(
	ctx context.Context,
	codes []string,
) ([]*shipping.ShippingExtra, error) {
	if len(codes) == 0 {
		return []*shipping.ShippingExtra{}, nil
	}

	var dtos []ShippingExtraDTO
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Where("code IN ?", codes).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]ShippingExtraDTO, len(dtos))
	for _, dto := range dtos {
		byCode[dto.Code] = dto
	}

	extras := make([]*shipping.ShippingExtra, 0, len(dtos))
	for _, code := range codes {
		dto, ok := byCode[code]
		if !ok {
			continue
		}

		extra, err := extraToDomain(dto)
		if err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}

	return extras, nil
}

// GetByCode retrieves one extra by code, regardless of active flag.
func (r *GormShippingExtraRepository) GetByCode(ctx context.Context, code string) (*shipping.ShippingExtra, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto ShippingExtraDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingExtra", code)
		}
		return nil, err
	}

	return extraToDomain(dto)
}

// GetAllActive retrieves every active extra sorted by display order.
func (r *GormShippingExtraRepository) GetAllActive(ctx context.Context) ([]*shipping.ShippingExtra, error) {
	var dtos []ShippingExtraDTO
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("display_order").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	extras := make([]*shipping.ShippingExtra, 0, len(dtos))
	for _, dto := range dtos {
		extra, err := extraToDomain(dto)
		if err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}

	return extras, nil
}
