package token

import (
	"errors"
	"fmt"
	"lottery_backend/internal/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateAccessToken(info *model.Account, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.AccountClaims{
		Address: info.Address,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.FormatInt(info.ID, 10),
			Subject:   info.Address,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.AccountClaims)
	if !ok || len(claims.Address) == 0 {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
