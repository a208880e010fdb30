package entropy

import (
	"errors"
	"lottery_backend/internal/api/apierr"
	dto "lottery_backend/internal/api/dto/entropy"
	"lottery_backend/internal/converter"
	"lottery_backend/internal/service"
	"lottery_backend/pkg/resp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.EntropyService
}

type Handler struct {
	serv service.EntropyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Head - GET /entropy/head
func (h *Handler) Head(w http.ResponseWriter, r *http.Request) {
	pos, err := h.serv.Head(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.HeadResponse{Position: pos})
}

// Block - GET /entropy/blocks/{height}
func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(chi.URLParam(r, "height"), 10, 64)
	if err != nil {
		apierr.BadRequest(w, errors.New("invalid height"))
		return
	}

	block, err := h.serv.Block(r.Context(), height)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlockResponse(*block))
}
