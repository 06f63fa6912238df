package auth

import (
	"time"

	"unijoblink/internal/common"
)

type RefreshToken struct {
	ID        common.UUID
	AccountID common.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
