package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type Account struct {
	ID       int64
	Address  string
	Name     string
	Password string
	Balance  int64
}

type AccountClaims struct {
	Address string `json:"addr"`
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
