package kennel

import "errors"

// Sentinel errors returned by ledger operations. All of them are recoverable
// by the caller and leave the ledger untouched.
var (
	// ErrNoMatchingDog reports that a sale found no dog in inventory for the
	// requested breed, gender and seller.
	ErrNoMatchingDog = errors.New("no matching dog in inventory")

	// ErrNotFound reports that a dog id does not exist in inventory.
	ErrNotFound = errors.New("dog not found")

	// ErrInvalidInput reports a value that the constrained input surface
	// should never have produced (unknown enum value, negative price).
	ErrInvalidInput = errors.New("invalid input")
)
