package utils

import (
	"sync"
	"time"
)

// Debounce returns a function that delays calling fn until wait has passed
// without another call. Only the last argument is delivered. fn runs on the
// timer's goroutine.
func Debounce[A any](fn func(A), wait time.Duration) func(A) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	return func(arg A) {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			fn(arg)
		})
	}
}

// Throttle returns a function that calls fn at once and then drops calls
// until limit has passed since the last call that went through.
func Throttle[A any](fn func(A), limit time.Duration) func(A) {
	var (
		mu      sync.Mutex
		last    time.Time
		started bool
	)

	return func(arg A) {
		mu.Lock()
		now := timeNow()
		if started && now.Sub(last) < limit {
			mu.Unlock()
			return
		}
		started = true
		last = now
		mu.Unlock()

		fn(arg)
	}
}
