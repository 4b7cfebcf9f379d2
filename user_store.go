package taskhub

import (
	"sync"
	"time"

	"github.com/nols-dev/taskhub/internal"
)

// UserStore owns the account collection, guarded by one mutex. Uniqueness
// of the email column is enforced here, inside the same critical section as
// the insert, so a duplicate can never slip in between check and append.
type UserStore struct {
	mu    sync.Mutex
	users []User
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create inserts user after checking that no existing account holds the
// same email. The caller supplies FirstName, LastName, Email, and
// PasswordHash; id and timestamps are assigned here. Returns
// [ErrEmailTaken] on conflict.
func (s *UserStore) Create(user User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return User{}, ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	user.ID = internal.NewID()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, user)

	return user, nil
}

// FindByEmail returns a copy of the user with the given email, or
// [ErrUserNotFound]. The lock is held only for the scan and clone.
func (s *UserStore) FindByEmail(email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return s.users[i], nil
		}
	}
	return User{}, ErrUserNotFound
}

// FindByID returns a copy of the user with the given id, or [ErrUserNotFound].
func (s *UserStore) FindByID(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], nil
		}
	}
	return User{}, ErrUserNotFound
}

// UpdateInfo applies the non-nil fields of patch to the user with the given
// id. Every present field is validated before any field is written, so an
// error can never leave a half-mutated record: email shape and uniqueness
// against every other account, then first and last name non-emptiness.
// On success UpdatedAt is stamped and the updated record returned.
func (s *UserStore) UpdateInfo(id string, patch UserPatch) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return User{}, ErrUserNotFound
	}

	if patch.Email != nil {
		if !IsEmailValid(*patch.Email) {
			return User{}, ErrEmailInvalid
		}
		for i := range s.users {
			if i != idx && s.users[i].Email == *patch.Email {
				return User{}, ErrEmailTaken
			}
		}
	}
	if patch.FirstName != nil && !IsNotEmpty(*patch.FirstName) {
		return User{}, ErrFirstNameEmpty
	}
	if patch.LastName != nil && !IsNotEmpty(*patch.LastName) {
		return User{}, ErrLastNameEmpty
	}

	user := &s.users[idx]
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	user.UpdatedAt = time.Now().UTC()

	return *user, nil
}

// UpdatePasswordHash replaces the stored digest for the given id and stamps
// UpdatedAt. The hash is computed by the caller outside this lock.
func (s *UserStore) UpdatePasswordHash(id, hash string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PasswordHash = hash
			s.users[i].UpdatedAt = time.Now().UTC()
			return s.users[i], nil
		}
	}
	return User{}, ErrUserNotFound
}
