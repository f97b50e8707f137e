package memory

import (
	"time"

	"konusturk-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds per-session tutor state in memory. Entries expire
// after an hour of inactivity; an expired entry just restarts the rotation.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) Save(state *store.TutorState) {
	r.cache.Set(state.SessionID, state, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.TutorState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.TutorState), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
