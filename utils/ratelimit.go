package utils

import (
	"sync"
	"time"
)

const (
	limitWindow    = time.Minute
	limitPerWindow = 10
)

// RateLimiter caps how often a user can run a given command. Role commands
// hit the Discord REST API several times each, so handlers check this before
// doing any work.
type RateLimiter struct {
	mu     sync.Mutex
	limits map[string]*window
}

type window struct {
	start time.Time
	count int
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{limits: make(map[string]*window)}
}

// Allow reports whether the user may run the command now.
func (rl *RateLimiter) Allow(userID, command string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := userID + ":" + command
	now := time.Now()

	w, ok := rl.limits[key]
	if !ok || now.Sub(w.start) >= limitWindow {
		rl.limits[key] = &window{start: now, count: 1}
		return true
	}
	if w.count >= limitPerWindow {
		return false
	}
	w.count++
	return true
}

// RetryAfter returns the seconds until the user's window resets.
func (rl *RateLimiter) RetryAfter(userID, command string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.limits[userID+":"+command]
	if !ok {
		return 0
	}
	remaining := limitWindow - time.Since(w.start)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds())
}
