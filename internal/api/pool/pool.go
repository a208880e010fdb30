package pool

import (
	"errors"
	"lottery_backend/internal/api/apierr"
	dto "lottery_backend/internal/api/dto/pool"
	"lottery_backend/internal/converter"
	"lottery_backend/internal/middleware"
	"lottery_backend/internal/model"
	"lottery_backend/internal/service"
	"lottery_backend/pkg/req"
	"lottery_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxPageLimit = 100

type HandlerDeps struct {
	Registry       service.RegistryService
	Pools          service.PoolService
	AmountDecimals int32
}

type Handler struct {
	registry service.RegistryService
	pools    service.PoolService
	decimals int32
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		registry: deps.Registry,
		pools:    deps.Pools,
		decimals: deps.AmountDecimals,
	}
}

// CreatePool - POST /pools
func (h *Handler) CreatePool(w http.ResponseWriter, r *http.Request) {
	creator, ok := middleware.AddressFromContext(r.Context())
	if !ok {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}

	payload, err := req.Decode[dto.CreatePoolRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, err)
		return
	}

	id, err := h.registry.CreatePool(r.Context(), converter.ToCreatePool(creator, payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, dto.CreatePoolResponse{ID: id})
}

// ListPools - GET /pools. Без offset/limit возвращается весь реестр
func (h *Handler) ListPools(w http.ResponseWriter, r *http.Request) {
	ids, err := h.registry.ListPools(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	page, err := paginate(ids, r.URL.Query().Get("offset"), r.URL.Query().Get("limit"))
	if err != nil {
		apierr.BadRequest(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ListPoolsResponse{Pools: page, Total: len(ids)})
}

// GetPool - GET /pools/{id}?address=
func (h *Handler) GetPool(w http.ResponseWriter, r *http.Request) {
	id, ok := poolID(w, r)
	if !ok {
		return
	}

	view, err := h.pools.GetPoolView(r.Context(), id, r.URL.Query().Get("address"))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPoolResponse(*view, h.decimals))
}

// GetPlayers - GET /pools/{id}/players
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	id, ok := poolID(w, r)
	if !ok {
		return
	}

	players, err := h.pools.GetPlayers(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	if players == nil {
		players = []string{}
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.PlayersResponse{Players: players})
}

// CanPickWinner - GET /pools/{id}/can-pick-winner
func (h *Handler) CanPickWinner(w http.ResponseWriter, r *http.Request) {
	id, ok := poolID(w, r)
	if !ok {
		return
	}

	can, err := h.pools.CanPickWinner(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.CanPickWinnerResponse{CanPickWinner: can})
}

// Enter - POST /pools/{id}/enter, платит текущий пользователь
func (h *Handler) Enter(w http.ResponseWriter, r *http.Request) {
	payer, ok := middleware.AddressFromContext(r.Context())
	if !ok {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}

	id, ok := poolID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.EnterRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, err)
		return
	}

	if _, err = h.pools.Enter(r.Context(), converter.ToEnter(id, payer, payload)); err != nil {
		apierr.Write(w, err)
		return
	}

	view, err := h.pools.GetPoolView(r.Context(), id, payer)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPoolResponse(*view, h.decimals))
}

// PickWinner - POST /pools/{id}/pick-winner, доступно любому
func (h *Handler) PickWinner(w http.ResponseWriter, r *http.Request) {
	id, ok := poolID(w, r)
	if !ok {
		return
	}

	result, err := h.pools.PickWinner(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDrawResponse(*result))
}

// Events - GET /pools/{id}/events
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	id, ok := poolID(w, r)
	if !ok {
		return
	}

	events, err := h.pools.ListEvents(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEventsResponse(events))
}

// Payouts - GET /pools/{id}/payouts
func (h *Handler) Payouts(w http.ResponseWriter, r *http.Request) {
	id, ok := poolID(w, r)
	if !ok {
		return
	}

	payouts, err := h.pools.ListPayouts(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPayoutsResponse(payouts))
}

func poolID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		apierr.BadRequest(w, errors.New("invalid pool id"))
		return 0, false
	}
	return id, true
}

func paginate(ids []int64, rawOffset, rawLimit string) ([]int64, error) {
	if len(rawOffset) == 0 && len(rawLimit) == 0 {
		return ids, nil
	}

	offset, limit := 0, maxPageLimit
	var err error
	if len(rawOffset) > 0 {
		if offset, err = strconv.Atoi(rawOffset); err != nil || offset < 0 {
			return nil, errors.New("invalid offset")
		}
	}
	if len(rawLimit) > 0 {
		if limit, err = strconv.Atoi(rawLimit); err != nil || limit <= 0 || limit > maxPageLimit {
			return nil, errors.New("invalid limit")
		}
	}

	if offset >= len(ids) {
		return []int64{}, nil
	}
	end := min(offset+limit, len(ids))
	return ids[offset:end], nil
}
