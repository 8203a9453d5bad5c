package ratelimit

import (
	"sync"
	"time"
)

// Limiter — скользящее окно по ключу пользователя. Состояние живёт только в
// памяти процесса: перезапуск приложения сбрасывает все лимиты, это осознанный
// компромисс (простота вместо строгой защиты от злоупотреблений).
type Limiter struct {
	mu       sync.Mutex
	requests map[string][]int64

	// now подменяется в тестах
	now func() int64
}

// New creates an empty limiter.
func New() *Limiter {
	return &Limiter{
		requests: make(map[string][]int64),
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

// CanMakeRequest prunes the window for key and, if fewer than maxRequests
// timestamps remain, records the current attempt and returns true. A rejected
// attempt is not recorded and does not count against the window.
func (l *Limiter) CanMakeRequest(key string, maxRequests int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now - window.Milliseconds()

	valid := l.requests[key][:0]
	for _, ts := range l.requests[key] {
		if ts > cutoff {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= maxRequests {
		l.requests[key] = valid
		return false
	}

	l.requests[key] = append(valid, now)
	return true
}
