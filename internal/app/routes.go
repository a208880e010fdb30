package app

import (
	accountAPI "lottery_backend/internal/api/account"
	authAPI "lottery_backend/internal/api/auth"
	entropyAPI "lottery_backend/internal/api/entropy"
	poolAPI "lottery_backend/internal/api/pool"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type routes struct {
	pool      *poolAPI.Handler
	account   *accountAPI.Handler
	auth      *authAPI.Handler
	entropy   *entropyAPI.Handler
	authMW    func(http.Handler) http.Handler
	metricsMW http.Handler
}

func mountRoutes(r chi.Router, h routes) {
	// Auth endpoints
	r.Route("/auth", func(rr chi.Router) {
		rr.Post("/register", h.auth.Register)
		rr.Post("/login", h.auth.Login)
		rr.Post("/refresh", h.auth.Refresh)
		rr.Post("/logout", h.auth.Logout)
	})

	// Account endpoints
	r.Route("/accounts", func(rr chi.Router) {
		rr.Use(h.authMW)
		rr.Post("/deposit", h.account.Deposit)
		rr.Get("/me", h.account.Me)
	})

	// Registry and pool endpoints
	r.Route("/pools", func(rr chi.Router) {
		rr.Get("/", h.pool.ListPools)
		rr.With(h.authMW).Post("/", h.pool.CreatePool)

		rr.Route("/{id}", func(pr chi.Router) {
			pr.Get("/", h.pool.GetPool)
			pr.Get("/players", h.pool.GetPlayers)
			pr.Get("/can-pick-winner", h.pool.CanPickWinner)
			pr.Get("/events", h.pool.Events)
			pr.Get("/payouts", h.pool.Payouts)
			pr.With(h.authMW).Post("/enter", h.pool.Enter)
			pr.Post("/pick-winner", h.pool.PickWinner)
		})
	})

	// Entropy endpoints
	r.Route("/entropy", func(rr chi.Router) {
		rr.Get("/head", h.entropy.Head)
		rr.Get("/blocks/{height}", h.entropy.Block)
	})

	r.Handle("/metrics", h.metricsMW)
}
