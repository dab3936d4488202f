package engine

import (
	"context"
	"sync"
)

// Locker serializes mutations of a single application. The returned release
// function must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, applicationID int) (func(), error)
}

type keyedLock struct {
	sem  chan struct{}
	refs int
}

// KeyedLocker is an in-process Locker holding one semaphore per application
// with waiters. Entries are dropped as soon as nobody holds or waits on them.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[int]*keyedLock
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[int]*keyedLock)}
}

func (k *KeyedLocker) Lock(ctx context.Context, applicationID int) (func(), error) {
	k.mu.Lock()
	lock, ok := k.locks[applicationID]
	if !ok {
		lock = &keyedLock{sem: make(chan struct{}, 1)}
		k.locks[applicationID] = lock
	}
	lock.refs++
	k.mu.Unlock()

	select {
	case lock.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(applicationID, lock)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.sem
			k.release(applicationID, lock)
		})
	}, nil
}

func (k *KeyedLocker) release(applicationID int, lock *keyedLock) {
	k.mu.Lock()
	defer k.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(k.locks, applicationID)
	}
}

// held is the number of applications with a holder or waiter.
func (k *KeyedLocker) held() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
