package service

import "errors"

// Failure reasons surfaced by the services. Handlers collapse all of them to
// the same Bad Request envelope, but callers and tests can tell them apart
// with errors.Is.
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a product that does not exist (or no longer exists).
	ErrNotFound = errors.New("product not found")

	// ErrExpired marks a product whose stock has been marked as perished;
	// expired products reject restock and sell.
	ErrExpired = errors.New("product expired")

	// ErrInsufficientStock marks a sell that would take current stock
	// below zero.
	ErrInsufficientStock = errors.New("insufficient stock remaining")

	// ErrConflict marks a conditional update that matched no row because
	// the product changed between the read and the write.
	ErrConflict = errors.New("product modified concurrently")
)
