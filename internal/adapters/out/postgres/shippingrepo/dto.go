// Package shippingrepo implements persistence for the shipping rule and
// extra catalogs over GORM. Rule configuration is stored as JSONB so new
// strategy parameters never require a migration.
package shippingrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleConfigJSON stores a rule's key/value configuration as a JSONB column.
type RuleConfigJSON map[string]any

// Value implements driver.Valuer for JSONB serialization.
func (c RuleConfigJSON) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (c *RuleConfigJSON) Scan(value any) error {
	if value == nil {
		*c = RuleConfigJSON{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported rule config column type %T", value)
	}

	return json.Unmarshal(raw, c)
}

// ShippingRuleDTO represents the database structure for persisting shipping
// rules.
type ShippingRuleDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code        string         `gorm:"uniqueIndex;size:64"`
	Name        string         `gorm:"size:255"`
	Description string         `gorm:"size:512"`
	RuleType    string         `gorm:"size:32;index"`
	Priority    int            `gorm:"index"`
	IsActive    bool           `gorm:"index"`
	Config      RuleConfigJSON `gorm:"type:jsonb"`
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "shipping_rules".
func (ShippingRuleDTO) TableName() string {
	return "shipping_rules"
}

// ShippingExtraDTO represents the database structure for persisting shipping
// extras.
type ShippingExtraDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code            string          `gorm:"uniqueIndex;size:64"`
	Name            string          `gorm:"size:255"`
	Description     string          `gorm:"size:512"`
	PriceType       string          `gorm:"size:16"`
	BasePrice       decimal.Decimal `gorm:"type:numeric(14,2)"`
	PercentageValue decimal.Decimal `gorm:"type:numeric(5,2)"`
	IsActive        bool            `gorm:"index"`
	DisplayOrder    int
}

// TableName overrides GORM's default naming to use "shipping_extras".
func (ShippingExtraDTO) TableName() string {
	return "shipping_extras"
}

func ruleFromDomain(rule *shipping.ShippingRule) ShippingRuleDTO {
	return ShippingRuleDTO{
		ID:          rule.ID().Bytes(),
		Code:        rule.Code(),
		Name:        rule.Name(),
		Description: rule.Description(),
		RuleType:    rule.RuleType(),
		Priority:    rule.Priority(),
		IsActive:    rule.IsActive(),
		Config:      RuleConfigJSON(rule.Config()),
		ValidFrom:   rule.ValidFrom(),
		ValidUntil:  rule.ValidUntil(),
	}
}

func ruleToDomain(dto ShippingRuleDTO) (*shipping.ShippingRule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	config, err := shipping.NewRuleConfig(dto.Config)
	if err != nil {
		return nil, err
	}

	return shipping.RestoreShippingRule(
		id, dto.Code, dto.Name, dto.Description, dto.RuleType,
		dto.Priority, dto.IsActive, config, dto.ValidFrom, dto.ValidUntil,
	)
}

func extraFromDomain(extra *shipping.ShippingExtra) ShippingExtraDTO {
	return ShippingExtraDTO{
		ID:              extra.ID().Bytes(),
		Code:            extra.Code(),
		Name:            extra.Name(),
		Description:     extra.Description(),
		PriceType:       extra.PriceType().String(),
		BasePrice:       extra.BasePrice(),
		PercentageValue: extra.PercentageValue(),
		IsActive:        extra.IsActive(),
		DisplayOrder:    extra.DisplayOrder(),
	}
}

func extraToDomain(dto ShippingExtraDTO) (*shipping.ShippingExtra, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	priceType, err := shipping.PriceTypeFromString(dto.PriceType)
	if err != nil {
		return nil, err
	}

	return shipping.RestoreShippingExtra(
		id, dto.Code, dto.Name, dto.Description, priceType,
		dto.BasePrice, dto.PercentageValue, dto.IsActive, dto.DisplayOrder,
	)
}
