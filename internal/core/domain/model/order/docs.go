// Package order contains the Order aggregate root and its owned value
// objects: OrderItem price/weight snapshots, OrderExtra applied-price
// records, the Status and PaymentStatus state machines, and the
// order-number generator.
//
// The aggregate recomputes its monetary totals after every mutation and
// enforces the lifecycle rules: pending orders are confirmed, confirmed
// orders enter transit and are delivered, and both pending and confirmed
// orders may be cancelled. Delivered and cancelled orders are immutable.
package order
