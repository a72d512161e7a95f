// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pricing engine. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ShippingCalculator: selects the shipping strategy for an order by
//     scanning the active rules in priority order, with a default fallback
//     for automatic selection and fail-loud semantics for forced rules
//   - The four shipping strategies: WeightBased, WeekendPromo, FlatRateZone,
//     and FirstOrder
//   - OrderPricer: folds shipping extras over an order as an immutable
//     decorator chain, threading the base subtotal through every layer so
//     percentage extras never compound
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
