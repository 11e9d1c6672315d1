package models

import "time"

// RevokedToken records a token id that must no longer be accepted
type RevokedToken struct {
	JTI       string    `json:"jti"`
	UserID    int       `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
