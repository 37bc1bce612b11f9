package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrUniqueness is returned when a unique-scoped field (email, sku,
	// category name, composite join key) collides with an existing row.
	ErrUniqueness = errors.New("store: uniqueness violation")

	// ErrConstraint is returned when a check constraint fails: a required
	// field is missing, an enum value is outside its set, or a numeric
	// range check does not hold.
	ErrConstraint = errors.New("store: constraint violation")

	// ErrReference is returned when a foreign key does not resolve to an
	// existing row at the moment of the write.
	ErrReference = errors.New("store: reference violation")

	// ErrRestrictedDeletion is returned when a delete is rejected because
	// a restrict-policy dependent still exists.
	ErrRestrictedDeletion = errors.New("store: restricted deletion")

	// ErrConflict is returned when a concurrent transaction committed
	// first and invalidated this one.
	ErrConflict = errors.New("store: transaction conflict")

	// ErrTimeout is returned when the lock-wait bound was exceeded.
	ErrTimeout = errors.New("store: transaction timeout")
)
