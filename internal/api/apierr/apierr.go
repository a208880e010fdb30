package apierr

import (
	"errors"
	"lottery_backend/internal/model"
	"lottery_backend/pkg/resp"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Response struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var kinds = []struct {
	err    error
	kind   string
	status int
}{
	{model.ErrInvalidParameter, "InvalidParameter", http.StatusBadRequest},
	{model.ErrWrongPayment, "WrongPayment", http.StatusBadRequest},
	{model.ErrPoolFull, "PoolFull", http.StatusConflict},
	{model.ErrNotReady, "NotReady", http.StatusTooEarly},
	{model.ErrAlreadyClosed, "AlreadyClosed", http.StatusConflict},
	{model.ErrPoolNotFound, "PoolNotFound", http.StatusNotFound},
	{model.ErrInsufficientFunds, "InsufficientFunds", http.StatusPaymentRequired},
	{model.ErrBalanceOverflow, "BalanceOverflow", http.StatusConflict},
	{model.ErrAccountNotFound, "AccountNotFound", http.StatusNotFound},
	{model.ErrAccountExists, "AccountExists", http.StatusConflict},
	{model.ErrUnauthorized, "Unauthorized", http.StatusUnauthorized},
	{model.ErrBlockNotFound, "BlockNotFound", http.StatusNotFound},
	{model.ErrNotRevealed, "NotRevealed", http.StatusTooEarly},
}

// Write - ошибка домена в виде {"error": вид, "message": текст}
func Write(w http.ResponseWriter, err error) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			resp.WriteJSONResponse(w, k.status, Response{Error: k.kind, Message: err.Error()})
			return
		}
	}

	log.Error().Err(err).Msg("internal error")
	resp.WriteJSONResponse(w, http.StatusInternalServerError, Response{Error: "Internal", Message: "internal error"})
}

// BadRequest - тело или параметры запроса не разобрались
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteJSONResponse(w, http.StatusBadRequest, Response{Error: "BadRequest", Message: err.Error()})
}
