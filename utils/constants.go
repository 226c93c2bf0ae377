// File: utils/constants.go
package utils

import "time"

// CartKeyPrefix is the prefix for per-client cart entries in the durable store.
const CartKeyPrefix = "serviceCart:"

// PendingBookingKeyPrefix is the prefix for staged checkout snapshots.
const PendingBookingKeyPrefix = "pendingBooking:"

// SessionKeyPrefix is the prefix for checkout session state.
const SessionKeyPrefix = "checkoutSession:"

// SessionTTL is the time-to-live for checkout session entries. The staged
// pending booking itself carries no TTL; it survives until completed or
// overwritten by a new checkout.
const SessionTTL = 30 * time.Minute

// ClientIDHeader carries the per-device client key that namespaces the
// durable store, standing in for the browser's device-local storage.
const ClientIDHeader = "X-Client-ID"
