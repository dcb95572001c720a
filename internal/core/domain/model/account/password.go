package account

import (
	"errors"

	"foodorder/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordIsRequired is returned for an empty password.
var ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

const hashCost = bcrypt.DefaultCost

// PasswordHash is a salted bcrypt digest. The plain text is never kept.
type PasswordHash struct {
	digest string
}

// HashPassword salts and hashes plain.
func HashPassword(plain string) (PasswordHash, error) {
	if plain == "" {
		return PasswordHash{}, ErrPasswordIsRequired
	}
	if len(plain) > maxPasswordBytes {
		return PasswordHash{}, errs.NewValueIsOutOfRangeError("password length", len(plain), 1, maxPasswordBytes)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{digest: string(digest)}, nil
}

// RestorePasswordHash wraps a digest loaded from storage.
func RestorePasswordHash(digest string) (PasswordHash, error) {
	if _, err := bcrypt.Cost([]byte(digest)); err != nil {
		return PasswordHash{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return PasswordHash{digest: digest}, nil
}

// Matches reports whether plain hashes to the stored digest.
func (p PasswordHash) Matches(plain string) bool {
	if p.digest == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(p.digest), []byte(plain))
	return err == nil
}

// String returns the digest for persistence.
func (p PasswordHash) String() string {
	return p.digest
}

// dummyHash is compared against when the username is unknown, so a miss
// costs the same as a wrong password.
var dummyHash = func() PasswordHash {
	h, err := HashPassword("not-a-real-password")
	if err != nil {
		panic(errors.Join(errors.New("building dummy password hash"), err))
	}
	return h
}()
