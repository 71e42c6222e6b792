package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounce(t *testing.T) {
	calls := make(chan int, 10)
	wait := 50 * time.Millisecond
	debounced := Debounce(func(n int) { calls <- n }, wait)

	for i := 1; i < 5; i++ {
		debounced(i)
	}
	lastCall := time.Now()
	debounced(5)

	select {
	case n := <-calls:
		assert.Equal(t, 5, n, "expected the last call's argument")
		assert.GreaterOrEqual(t, time.Since(lastCall), wait)
	case <-time.After(time.Second):
		t.Fatal("debounced function never ran")
	}

	select {
	case n := <-calls:
		t.Fatalf("unexpected extra call with %d", n)
	case <-time.After(3 * wait):
	}
}

func TestDebounce_SeparateBursts(t *testing.T) {
	calls := make(chan string, 10)
	wait := 20 * time.Millisecond
	debounced := Debounce(func(s string) { calls <- s }, wait)

	debounced("first")
	require.Equal(t, "first", receive(t, calls))

	debounced("second")
	debounced("third")
	require.Equal(t, "third", receive(t, calls))
}

func TestThrottle(t *testing.T) {
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	var calls []int
	throttled := Throttle(func(n int) { calls = append(calls, n) }, 100*time.Millisecond)

	throttled(1)
	throttled(2)
	assert.Equal(t, []int{1}, calls, "first call runs immediately, the rest are dropped")

	now = now.Add(50 * time.Millisecond)
	throttled(3)
	assert.Equal(t, []int{1}, calls)

	now = now.Add(60 * time.Millisecond)
	throttled(4)
	assert.Equal(t, []int{1, 4}, calls, "a call after the limit runs immediately")

	now = now.Add(10 * time.Millisecond)
	throttled(5)
	assert.Equal(t, []int{1, 4}, calls, "the accepted call opens a new window")
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for call")
	}
	var zero T
	return zero
}
