// Package credential provides one-way password hashing and verification.
package credential

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt digest of plain. Each call embeds a fresh
// random salt, so hashing the same secret twice yields different outputs.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the bcrypt digest hash. A wrong
// password is false, never an error; a structurally invalid hash is also
// reported as false so a malformed stored digest cannot leak through an
// HTTP response as a password-correctness signal.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
