// Package customer holds the account-side entities referenced during order
// creation: User accounts that place orders and the delivery Address records
// they own. Zone-scoped shipping rules match against Address.Zone.
package customer
