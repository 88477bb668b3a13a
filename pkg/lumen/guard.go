package lumen

import (
	"sync"
)

// Guard serializes access to the logger's configuration and sinks. It is
// chosen once per Init: a mutex when the logger is thread-safe, a no-op
// otherwise.
type Guard interface {
	Lock()
	Unlock()
	// Destroy releases the guard. It is called once, by Cleanup or by a
	// failed Init, and the guard is not used afterwards.
	Destroy()
}

// GuardFactory allocates the guard used by a thread-safe logger.
type GuardFactory func() (Guard, error)

// NewMutexGuard is the default GuardFactory.
func NewMutexGuard() (Guard, error) {
	return &mutexGuard{}, nil
}

type mutexGuard struct {
	mu sync.Mutex
}

func (g *mutexGuard) Lock()    { g.mu.Lock() }
func (g *mutexGuard) Unlock()  { g.mu.Unlock() }
func (g *mutexGuard) Destroy() {}

// noopGuard is used when the caller promises not to log concurrently.
type noopGuard struct{}

func (noopGuard) Lock()    {}
func (noopGuard) Unlock()  {}
func (noopGuard) Destroy() {}
