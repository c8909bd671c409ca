// Package repository holds workshop sessions in an in-process TTL cache.
// Sessions are single-owner and disposable, so no external store is
// involved: an expired or lost session is recovered through snapshot
// import on the client side.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ifab-lab/workshop-backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *gocache.Cache
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func (r *SessionRepository) Create(_ context.Context, session *entity.Session) error {
	if _, found := r.cache.Get(session.ID); found {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.cache.SetDefault(session.ID, cloneSession(session))
	return nil
}

func (r *SessionRepository) Get(_ context.Context, sessionID string) (*entity.Session, error) {
	raw, found := r.cache.Get(sessionID)
	if !found {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}

	session, ok := raw.(*entity.Session)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type for session %s", sessionID)
	}

	return cloneSession(session), nil
}

// Update stores the session and refreshes its TTL. Every successful write
// extends the session lifetime.
func (r *SessionRepository) Update(_ context.Context, session *entity.Session) error {
	if _, found := r.cache.Get(session.ID); !found {
		return fmt.Errorf("%w: %s", entity.ErrSessionNotFound, session.ID)
	}
	r.cache.SetDefault(session.ID, cloneSession(session))
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	if _, found := r.cache.Get(sessionID); !found {
		return fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}
	r.cache.Delete(sessionID)
	return nil
}

// cloneSession copies the session so cached state is never mutated through
// a pointer still held by a handler.
func cloneSession(s *entity.Session) *entity.Session {
	clone := *s

	clone.Answers = make(map[string]entity.Answer, len(s.Answers))
	for id, a := range s.Answers {
		clone.Answers[id] = cloneAnswer(a)
	}

	if s.Analysis != nil {
		analysis := *s.Analysis
		analysis.Sections = make(map[string]string, len(s.Analysis.Sections))
		for k, v := range s.Analysis.Sections {
			analysis.Sections[k] = v
		}
		clone.Analysis = &analysis
	}

	return &clone
}

func cloneAnswer(a entity.Answer) entity.Answer {
	clone := a

	if a.Fields != nil {
		clone.Fields = make(map[string]string, len(a.Fields))
		for k, v := range a.Fields {
			clone.Fields[k] = v
		}
	}
	if a.Selected != nil {
		clone.Selected = append([]string(nil), a.Selected...)
	}
	if a.Notes != nil {
		clone.Notes = make(map[string]string, len(a.Notes))
		for k, v := range a.Notes {
			clone.Notes[k] = v
		}
	}

	return clone
}
