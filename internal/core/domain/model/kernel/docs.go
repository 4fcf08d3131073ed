// Package kernel contains the shared building blocks of the marketplace domain:
// the UUID identifier, the Entity base carried by every aggregate (identity,
// timestamps, concurrency token, pending domain events), the domain event
// contract, and the validated value objects shared across aggregates
// (JsonSpec, CartSnapshot, Email, PhoneNumber).
//
// Everything in this package is a value object or a base type: immutable after
// construction (except for the Entity mutation bookkeeping), compared by value,
// and validated at construction time so that aggregates can assume their
// value-typed fields are always valid.
package kernel
