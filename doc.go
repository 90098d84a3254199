// Package kennel provides the types and operations to keep the books of a
// small dog-breeding business run by two partners. It is designed to be
// local-first and auditable: the whole state lives in a single
// human-readable JSON document that the owners fully control.
//
// The core functionalities include:
//   - Inventory: recording the dogs currently held by either partner, each
//     with a breed, gender and birth date.
//   - Sales History: an append-only record of sales, each a snapshot of the
//     dog that was sold together with the seller, the price and the payment
//     method.
//   - Partner Balances: two running balances credited on every sale
//     according to a fixed money-routing policy (cash stays with the
//     seller, card payments settle with the other partner).
//   - Data Persistence: encoding and decoding the ledger to and from a
//     canonical, version-controllable JSON format.
//
// This package serves as the foundational logic for the `kennel`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package kennel
