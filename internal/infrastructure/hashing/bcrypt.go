// Package hashing provides the password hashing capability used by the IAM
// service.
package hashing

import "golang.org/x/crypto/bcrypt"

// BcryptService hashes and verifies passwords with bcrypt.
type BcryptService struct {
	cost int
}

// NewBcryptService creates a hashing service with the default bcrypt cost.
func NewBcryptService() *BcryptService {
	return &BcryptService{cost: bcrypt.DefaultCost}
}

// Encode hashes a plaintext password.
func (s *BcryptService) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether the plaintext password matches the stored hash.
func (s *BcryptService) Matches(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
