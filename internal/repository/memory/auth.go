package memory

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"sync"
)

type authRepo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session
}

func NewAuthRepository() repository.AuthRepository {
	return &authRepo{sessions: make(map[string]model.Session)}
}

func (r *authRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

func (r *authRepo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, model.ErrUnauthorized
	}
	return &s, nil
}

func (r *authRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
