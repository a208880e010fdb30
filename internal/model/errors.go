package model

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrWrongPayment     = errors.New("wrong payment")
	ErrPoolFull         = errors.New("pool full")
	ErrNotReady         = errors.New("not ready")
	ErrAlreadyClosed    = errors.New("already closed")

	ErrPoolNotFound      = errors.New("pool not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBalanceOverflow   = errors.New("balance overflow")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotRevealed       = errors.New("entropy not revealed")
	ErrBlockNotFound     = errors.New("block not found")
)
