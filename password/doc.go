// Package password provides argon2id hashing and verification for account
// credentials, encoded in PHC string format.
//
// The package is a pure capability: no shared state, no I/O besides the
// system randomness source, safe for concurrent use. Length policy for new
// passwords is NOT enforced here; that belongs to the validation layer in
// the root package. Verify distinguishes a malformed digest (an error) from
// a well-formed digest that does not match (false, nil).
package password
