package users

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier isolates how passwords are stored and compared so the
// comparison contract can be swapped without touching handlers.
type CredentialVerifier interface {
	// Store transforms a password into its stored representation.
	Store(password string) (string, error)
	// Verify reports whether supplied matches the stored representation.
	Verify(stored, supplied string) bool
}

// PlainVerifier stores and compares credentials as opaque values with no
// irreversible transformation. This reproduces the source system's behavior
// and is a known defect; see the bcrypt scheme for the fixed variant.
type PlainVerifier struct{}

func (PlainVerifier) Store(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptVerifier stores a salted irreversible hash.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Store(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// VerifierFor maps a CREDENTIAL_SCHEME value to a verifier. Unknown schemes
// fall back to plain.
func VerifierFor(scheme string) CredentialVerifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
