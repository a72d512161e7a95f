// Package shipping contains the configuration entities that drive the
// pricing engine: ShippingRule records selecting a costing strategy with a
// validated key/value configuration, and ShippingExtra catalog entries
// describing optional add-on services with fixed or percentage pricing.
//
// Both entity types are read-only from the engine's perspective. They are
// loaded through repositories, validated once at construction time, and
// consumed by the strategy selector and the extra-cost pricer in
// internal/core/domain/services.
package shipping
