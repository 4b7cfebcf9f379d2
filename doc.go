// Package taskhub implements the in-memory core of a todo and user-account
// HTTP API: two concurrent stores, an account service with argon2id
// credential handling, and the validation rules both enforce before any
// mutation.
//
// # Architecture boundaries
//
// taskhub is the public surface. It exposes [TodoStore], [UserStore],
// [Accounts], the entity types, and the sentinel errors the HTTP layer maps
// to status codes. Transport concerns (routing, CORS, bearer tokens, status
// mapping) live in httpapi; credential hashing lives in password; the
// optional Redis login limiter lives under internal/rate.
//
// # Concurrency contract
//
// Each store guards its collection with a single mutex. Store methods are
// safe for concurrent use and hold the lock only while scanning, mutating,
// or copying. The lock is never held across hashing or verification, which
// [Accounts] runs outside any critical section. Operations on one store are linearized by
// its lock; no method takes both locks, so the stores cannot deadlock.
//
// # What this package must NOT do
//
//   - Persist anything: state is rebuilt empty on every start.
//   - Expose the raw collections, the locks, or a stored password hash.
//   - Report whether a login failure was the email or the password.
package taskhub
