package services

import "sync"

type dayKey struct {
	tournamentID int
	dayIndex     int
}

// dayLocks serializes generations for the same tournament day within this process.
// Entries are reference counted and removed once no caller holds or waits on them.
type dayLocks struct {
	mu    sync.Mutex
	locks map[dayKey]*dayLock
}

type dayLock struct {
	mu   sync.Mutex
	refs int
}

func newDayLocks() *dayLocks {
	return &dayLocks{locks: make(map[dayKey]*dayLock)}
}

// Lock blocks until the day is free and returns its unlock function.
func (d *dayLocks) Lock(tournamentID, dayIndex int) func() {
	key := dayKey{tournamentID: tournamentID, dayIndex: dayIndex}

	d.mu.Lock()
	l, ok := d.locks[key]
	if !ok {
		l = &dayLock{}
		d.locks[key] = l
	}
	l.refs++
	d.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		d.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(d.locks, key)
		}
		d.mu.Unlock()
	}
}

func (d *dayLocks) size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.locks)
}
