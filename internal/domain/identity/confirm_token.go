package identity

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/shopnet/backend/internal/domain/shared"
)

// ConfirmEmailToken is a one-time key sent to a user to confirm their email.
// The token is deleted after a successful confirmation.
type ConfirmEmailToken struct {
	shared.BaseEntity
	UserID uuid.UUID
	Key    string
}

// NewConfirmEmailToken creates a token with a random key for the given user
func NewConfirmEmailToken(userID uuid.UUID) (*ConfirmEmailToken, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}

	key, err := generateTokenKey()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_GENERATION_ERROR", "Failed to generate confirmation token")
	}

	return &ConfirmEmailToken{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Key:        key,
	}, nil
}

// Matches reports whether the supplied key equals the stored one
func (t *ConfirmEmailToken) Matches(key string) bool {
	return key != "" && t.Key == key
}

func generateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
