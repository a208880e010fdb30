package converter

import (
	"encoding/hex"
	accountDto "lottery_backend/internal/api/dto/account"
	authDto "lottery_backend/internal/api/dto/auth"
	entropyDto "lottery_backend/internal/api/dto/entropy"
	"lottery_backend/internal/model"
	"time"
)

func RegisterRequestToAccountModel(req *authDto.RegisterRequest) *model.Account {
	name := req.Name
	if len(name) == 0 {
		name = req.Address
	}
	return &model.Account{
		Address:  req.Address,
		Name:     name,
		Password: req.Password,
	}
}

func ToAccountResponse(a model.Account, decimals int32) accountDto.AccountResponse {
	return accountDto.AccountResponse{
		Address:     a.Address,
		Name:        a.Name,
		Balance:     a.Balance,
		BalanceText: FormatAmount(a.Balance, decimals),
	}
}

func ToBlockResponse(b model.Block) entropyDto.BlockResponse {
	return entropyDto.BlockResponse{
		Height:    b.Height,
		Hash:      hex.EncodeToString(b.Hash),
		PrevHash:  hex.EncodeToString(b.PrevHash),
		Nonce:     hex.EncodeToString(b.Nonce),
		CreatedAt: b.CreatedAt.Format(time.RFC3339Nano),
	}
}
