package shipping

import (
	"errors"
	"fmt"
	"time"

	"quickcourier/internal/core/domain/model/kernel"
	"quickcourier/internal/pkg/errs"
	"quickcourier/internal/pkg/guard"
)

// ErrShippingRuleIsNotConstructed is returned when a ShippingRule instance
// was not created through NewShippingRule or RestoreShippingRule.
var ErrShippingRuleIsNotConstructed = errors.New(
	"ShippingRule must be created via NewShippingRule or RestoreShippingRule",
)

// ShippingRule is a configuration entity selecting a shipping-cost strategy
// and its parameters. Rules are read by the pricing engine and never mutated
// by it.
//
// Invariants:
//   - Code and name are non-empty and unique per rule
//   - RuleType names a registered strategy tag
//   - Priority orders evaluation (lower values are evaluated first)
//   - Configuration is validated at load time
type ShippingRule struct {
	id          kernel.UUID
	code        string
	name        string
	description string
	ruleType    string
	priority    int
	isActive    bool
	config      RuleConfig
	validFrom   *time.Time
	validUntil  *time.Time

	guard guard.ConstructorGuard
}

// NewShippingRule creates an active rule with an empty validity window.
// Validity bounds can be attached via RestoreShippingRule when rehydrating
// from storage.
func NewShippingRule(code, name, ruleType string, priority int, config RuleConfig) (*ShippingRule, error) {
	return RestoreShippingRule(
		kernel.NewUUID(), code, name, "", ruleType, priority, true, config, nil, nil,
	)
}

// RestoreShippingRule reconstructs a rule from persistence with its full
// state, validating every field.
func RestoreShippingRule(
	id kernel.UUID,
	code, name, description, ruleType string,
	priority int,
	isActive bool,
	config RuleConfig,
	validFrom, validUntil *time.Time,
) (*ShippingRule, error) {
	rule := &ShippingRule{
		id:          id,
		description: description,
		priority:    priority,
		isActive:    isActive,
		validFrom:   validFrom,
		validUntil:  validUntil,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		rule.setCode(code),
		rule.setName(name),
		rule.setRuleType(ruleType),
		rule.setConfig(config),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// Validate ensures the rule was created through a constructor.
func (r *ShippingRule) Validate() error {
	if r == nil {
		return ErrShippingRuleIsNotConstructed
	}
	return r.guard.Validate(ErrShippingRuleIsNotConstructed)
}

// ID returns the rule's unique identifier.
func (r *ShippingRule) ID() kernel.UUID {
	return r.id
}

// Code returns the rule's unique business code.
func (r *ShippingRule) Code() string {
	return r.code
}

// Name returns the rule's display name.
func (r *ShippingRule) Name() string {
	return r.name
}

// Description returns the rule's free-form description.
func (r *ShippingRule) Description() string {
	return r.description
}

// RuleType returns the strategy tag this rule dispatches to.
func (r *ShippingRule) RuleType() string {
	return r.ruleType
}

// Priority returns the evaluation priority. Lower values win.
func (r *ShippingRule) Priority() int {
	return r.priority
}

// IsActive reports whether the rule is enabled.
func (r *ShippingRule) IsActive() bool {
	return r.isActive
}

// Config returns the rule's validated configuration map.
func (r *ShippingRule) Config() RuleConfig {
	return r.config
}

// ValidFrom returns the start of the validity window, nil when unbounded.
func (r *ShippingRule) ValidFrom() *time.Time {
	return r.validFrom
}

// ValidUntil returns the end of the validity window, nil when unbounded.
func (r *ShippingRule) ValidUntil() *time.Time {
	return r.validUntil
}

// IsValidAt reports whether the rule is active and inside its validity
// window at the given instant. Open bounds are treated as unbounded.
func (r *ShippingRule) IsValidAt(at time.Time) bool {
	if r.validFrom != nil && at.Before(*r.validFrom) {
		return false
	}
	if r.validUntil != nil && at.After(*r.validUntil) {
		return false
	}
	return r.isActive
}

func (r *ShippingRule) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	r.code = code
	return nil
}

func (r *ShippingRule) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *ShippingRule) setRuleType(ruleType string) error {
	if ruleType == "" {
		return errs.NewValueIsRequiredError("ruleType")
	}
	r.ruleType = ruleType
	return nil
}

func (r *ShippingRule) setConfig(config RuleConfig) error {
	if config == nil {
		config = RuleConfig{}
	}
	r.config = config
	return nil
}

func (r *ShippingRule) String() string {
	return fmt.Sprintf("ShippingRule{code=%s, type=%s, priority=%d, active=%t}",
		r.code, r.ruleType, r.priority, r.isActive)
}
