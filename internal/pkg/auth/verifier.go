package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashing cost
const BcryptCost = 12

// PasswordVerifier compares a stored credential against a supplied one.
// Implementations decide how the stored value is encoded.
type PasswordVerifier interface {
	Verify(stored, supplied string) bool
}

// PlainTextVerifier compares passwords by direct value equality.
type PlainTextVerifier struct{}

// Verify reports whether supplied equals the stored value.
func (PlainTextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptVerifier compares a supplied password against a stored bcrypt hash.
type BcryptVerifier struct{}

// Verify reports whether supplied matches the stored bcrypt hash.
func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// PasswordEncoder produces the stored form of a new credential. Encoder and
// verifier must agree on the encoding, so both are selected by the same scheme.
type PasswordEncoder interface {
	Encode(password string) (string, error)
}

// Encode stores the password as given.
func (PlainTextVerifier) Encode(password string) (string, error) {
	return password, nil
}

// Encode stores a bcrypt hash of the password.
func (BcryptVerifier) Encode(password string) (string, error) {
	return HashPassword(password)
}

// ForScheme returns the verifier/encoder pair for a configured scheme name.
// Anything other than "bcrypt" gets the plain-text pair.
func ForScheme(scheme string) (PasswordVerifier, PasswordEncoder) {
	if scheme == "bcrypt" {
		return BcryptVerifier{}, BcryptVerifier{}
	}
	return PlainTextVerifier{}, PlainTextVerifier{}
}

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
