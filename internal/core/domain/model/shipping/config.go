package shipping

import (
	"fmt"

	"quickcourier/internal/pkg/errs"
)

// RuleConfig is the validated key/value configuration attached to a shipping
// rule. Values are decoded once when the rule is loaded; malformed entries
// are rejected at that point instead of surfacing during cost calculation.
//
// Supported value kinds:
//   - string
//   - bool
//   - numbers (stored as float64, the way JSON decoding produces them)
//   - lists of strings
//   - nested maps of the same kinds (e.g. a "conditions" section)
type RuleConfig map[string]any

// NewRuleConfig validates a raw configuration map and returns it as a
// RuleConfig. Returns a ValueIsInvalidError naming the offending key when a
// value is of an unsupported kind.
func NewRuleConfig(raw map[string]any) (RuleConfig, error) {
	if raw == nil {
		return RuleConfig{}, nil
	}

	for key, value := range raw {
		if err := validateConfigValue(key, value); err != nil {
			return nil, err
		}
	}

	return RuleConfig(raw), nil
}

func validateConfigValue(key string, value any) error {
	switch v := value.(type) {
	case string, bool, float64, int, int64:
		return nil
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return errs.NewValueIsInvalidErrorWithCause(
					"configuration",
					fmt.Errorf("list %q may only contain strings, got %T", key, item),
				)
			}
		}
		return nil
	case []string:
		return nil
	case map[string]any:
		for nestedKey, nestedValue := range v {
			if err := validateConfigValue(key+"."+nestedKey, nestedValue); err != nil {
				return err
			}
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"configuration",
			fmt.Errorf("key %q has unsupported value type %T", key, value),
		)
	}
}

// Float returns the numeric value stored under key. The second result
// reports whether the key was present and numeric.
func (c RuleConfig) Float(key string) (float64, bool) {
	switch v := c[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// String returns the string value stored under key.
func (c RuleConfig) String(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}

// Bool returns the boolean value stored under key.
func (c RuleConfig) Bool(key string) (bool, bool) {
	v, ok := c[key].(bool)
	return v, ok
}

// StringSlice returns the list of strings stored under key. JSON decoding
// produces []any, so both representations are accepted.
func (c RuleConfig) StringSlice(key string) ([]string, bool) {
	switch v := c[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Section returns the nested configuration map stored under key.
func (c RuleConfig) Section(key string) (RuleConfig, bool) {
	switch v := c[key].(type) {
	case map[string]any:
		return RuleConfig(v), true
	case RuleConfig:
		return v, true
	default:
		return nil, false
	}
}
