// Package models defines the core domain models for the gift pool.
//
// The domain is small and deliberately flat:
//   - Coworker: a member of the office, optionally with a birthday
//   - Contribution: per-(recipient, year) pledge/payment state for everyone else
//   - PaymentInfo: the shared payout instructions (singleton)
//   - OrganizerClaim: which session identity holds the organizer role (singleton)
//
// Coworkers are referenced by ID strings rather than pointers to avoid
// circular references; a contribution's contributor map is keyed by coworker
// ID. A coworker missing from that map is an implicit unpaid entry with
// amount 0.
package models
