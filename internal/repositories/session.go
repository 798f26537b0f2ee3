package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

// ErrSessionNotFound is returned for unknown or logged-out sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps login sessions in process memory.
// Sessions live until logout; a restart signs everybody out.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uuid.UUID]*models.Session)}
}

func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = cloneSession(session)
	logger.Log.Infow("session saved", "session_id", session.ID, "username", session.Username)
	return nil
}

// Get returns a copy of the session, so callers cannot race on its fields.
func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

// Update applies fn to the stored session under the write lock.
func (r *SessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(s *models.Session)) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	fn(s)
	return cloneSession(s), nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	logger.Log.Infow("session deleted", "session_id", id)
	return nil
}

func cloneSession(s *models.Session) *models.Session {
	c := *s
	c.Columns = append([]models.ColumnSpec(nil), s.Columns...)
	return &c
}
