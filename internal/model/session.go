package model

import "time"

type Session struct {
	ID           string
	AccountID    int64
	RefreshToken string
	ExpiresAt    time.Time
}
