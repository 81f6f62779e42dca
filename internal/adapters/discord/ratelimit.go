package discord

import (
	"sync"
	"time"
)

// userLimiter: una consulta al backend por usuario por ventana.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

// Allow devuelve false y cuánto falta si el usuario está dentro de la ventana.
func (l *userLimiter) Allow(userID string) (bool, time.Duration) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false, until.Sub(now)
	}
	l.next[userID] = now.Add(l.win)
	// purga de ventanas vencidas
	for id, until := range l.next {
		if now.After(until) {
			delete(l.next, id)
		}
	}
	return true, 0
}
