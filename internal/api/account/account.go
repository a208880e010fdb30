package account

import (
	"lottery_backend/internal/api/apierr"
	dto "lottery_backend/internal/api/dto/account"
	"lottery_backend/internal/converter"
	"lottery_backend/internal/middleware"
	"lottery_backend/internal/model"
	"lottery_backend/internal/service"
	"lottery_backend/pkg/req"
	"lottery_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv           service.AccountService
	AmountDecimals int32
}

type Handler struct {
	serv     service.AccountService
	decimals int32
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, decimals: deps.AmountDecimals}
}

// Deposit - POST /accounts/deposit
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	address, ok := middleware.AddressFromContext(r.Context())
	if !ok {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, err)
		return
	}

	if _, err = h.serv.Deposit(r.Context(), address, payload.Amount); err != nil {
		apierr.Write(w, err)
		return
	}

	h.writeAccount(w, r, address)
}

// Me - GET /accounts/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	address, ok := middleware.AddressFromContext(r.Context())
	if !ok {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}

	h.writeAccount(w, r, address)
}

func (h *Handler) writeAccount(w http.ResponseWriter, r *http.Request, address string) {
	account, err := h.serv.GetAccount(r.Context(), address)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*account, h.decimals))
}
