// Package rate provides the Redis-backed fixed-window limiter guarding the
// login endpoint.
//
// # Window semantics
//
// Fixed-window counters: INCR plus conditional EXPIRE on the first hit.
// Key prefixes:
//   - ll:  login per-email
//   - lli: login per-IP
//
// # What this package must NOT do
//
//   - Decide what a limit violation means for the caller (the account
//     service maps the errors here onto its own taxonomy).
//   - Be imported outside the taskhub module.
package rate
