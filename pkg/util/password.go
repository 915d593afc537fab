package util

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost 12 keeps sign-up and sign-in latency in the low hundreds of
// milliseconds while staying well above the bcrypt default of 10.
const passwordHashCost = 12

// HashPassword returns the bcrypt hash stored in users.password_hash
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether a sign-in attempt matches the stored hash
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
