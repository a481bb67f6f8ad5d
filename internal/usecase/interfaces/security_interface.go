package interfaces

import "guytogo/internal/domain/entities"

// IPasswordHasher hashes and verifies credentials with a one-way salted hash.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// ITokenIssuer mints session tokens for an authenticated identity.
type ITokenIssuer interface {
	Issue(identity entities.Identity) (string, error)
}
