package auth

import (
	"lottery_backend/internal/api/apierr"
	dto "lottery_backend/internal/api/dto/auth"
	"lottery_backend/internal/converter"
	"lottery_backend/internal/model"
	"lottery_backend/internal/service"
	"lottery_backend/pkg/req"
	"lottery_backend/pkg/resp"
	"net/http"
	"time"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
)

type HandlerDeps struct {
	Serv            service.AuthService
	RefreshTokenTTL time.Duration
}

type Handler struct {
	serv       service.AuthService
	refreshTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, refreshTTL: deps.RefreshTokenTTL}
}

// Register создаёт счёт, открывает сессию,
// возвращает access_token, а session_id и refresh_token через cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, err)
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToAccountModel(&requestBody))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, err)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Address, requestBody.Password)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдаёт новый access_token по session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}
	refreshToken, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionID.Value,
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		apierr.Write(w, model.ErrUnauthorized)
		return
	}

	if err = h.serv.Logout(r.Context(), c.Value); err != nil {
		apierr.Write(w, err)
		return
	}

	deleteCookie(w, sessionIDCookie, "/")
	deleteCookie(w, refreshTokenCookie, "/auth")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.refreshTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    data.RefreshToken,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.refreshTTL.Seconds()),
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
