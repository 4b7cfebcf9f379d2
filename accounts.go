package taskhub

import (
	"context"
	"errors"
	"fmt"

	"github.com/nols-dev/taskhub/internal/rate"
)

// Hasher is the credential capability consumed by [Accounts]. Hash fails
// only on a backend error; Verify fails only on a malformed digest, which
// is distinct from a clean mismatch.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// Accounts orchestrates account operations over a [UserStore]: validation,
// hashing, the optional login limiter, and metrics. Hashing and
// verification always run before or after the store's critical section,
// never inside it, so unrelated requests are not serialized behind
// cryptographic work.
type Accounts struct {
	store   *UserStore
	hasher  Hasher
	limiter *rate.Limiter
	metrics *Metrics
}

// NewAccounts wires an account service. limiter and metrics may be nil,
// which disables login throttling and counter collection respectively.
func NewAccounts(store *UserStore, hasher Hasher, limiter *rate.Limiter, metrics *Metrics) *Accounts {
	return &Accounts{
		store:   store,
		hasher:  hasher,
		limiter: limiter,
		metrics: metrics,
	}
}

// Register validates every field, hashes the password, and inserts the
// account. Field validation runs in a fixed order (first name, last name,
// email shape, password policy) so an invalid payload is rejected before
// the hashing cost is paid; the email uniqueness check happens atomically
// with the insert inside the store.
func (a *Accounts) Register(ctx context.Context, in RegisterInput) (User, error) {
	if !IsNotEmpty(in.FirstName) {
		return User{}, ErrFirstNameEmpty
	}
	if !IsNotEmpty(in.LastName) {
		return User{}, ErrLastNameEmpty
	}
	if !IsEmailValid(in.Email) {
		return User{}, ErrEmailInvalid
	}
	if err := CheckPasswordPolicy(in.Password, in.ConfirmPassword); err != nil {
		return User{}, err
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.store.Create(User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return User{}, err
	}

	a.metrics.Inc(MetricRegisterSuccess)
	return user, nil
}

// Login authenticates an email and password. Unknown email and wrong
// password both return [ErrInvalidCredentials] with the same message.
// clientIP feeds the optional per-IP throttle and may be empty.
func (a *Accounts) Login(ctx context.Context, email, password, clientIP string) (User, error) {
	if a.limiter != nil {
		if err := a.limiter.EnforceLogin(ctx, email, clientIP); err != nil {
			if errors.Is(err, rate.ErrRateLimited) {
				a.metrics.Inc(MetricLoginRateLimited)
				return User{}, ErrLoginRateLimited
			}
			return User{}, fmt.Errorf("%w: %v", ErrLoginUnavailable, err)
		}
	}

	user, err := a.store.FindByEmail(email)
	if err != nil {
		a.metrics.Inc(MetricLoginFailure)
		return User{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		a.metrics.Inc(MetricLoginFailure)
		return User{}, ErrInvalidCredentials
	}

	a.metrics.Inc(MetricLoginSuccess)
	return user, nil
}

// UpdateInfo applies a profile patch. Validation and mutation are atomic
// inside the store; see [UserStore.UpdateInfo].
func (a *Accounts) UpdateInfo(ctx context.Context, id string, patch UserPatch) (User, error) {
	return a.store.UpdateInfo(id, patch)
}

// ChangePassword rotates an account's credential. An unknown id and a
// wrong current password both come back as [ErrInvalidCredentials], so the
// caller cannot tell which one was at fault. The new password must differ
// from the current one and satisfy the registration policy.
func (a *Accounts) ChangePassword(ctx context.Context, id, current, newPassword, confirm string) error {
	user, err := a.store.FindByID(id)
	if err != nil {
		return ErrInvalidCredentials
	}

	if newPassword == current {
		return ErrPasswordReuse
	}
	if err := CheckPasswordPolicy(newPassword, confirm); err != nil {
		return err
	}

	ok, err := a.hasher.Verify(current, user.PasswordHash)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := a.store.UpdatePasswordHash(id, hash); err != nil {
		return err
	}

	a.metrics.Inc(MetricPasswordChanged)
	return nil
}
