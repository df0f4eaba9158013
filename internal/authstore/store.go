// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package authstore holds the in-memory authentication state of the UI.
//
// A Store keeps at most one current User. Whether someone is authenticated is
// derived from that user and never stored on its own. Login and Logout are the
// only mutators; observers registered with Subscribe are notified synchronously
// after every change so the UI can re-render.
//
// Nothing is verified, persisted or sent over the network: Login simply installs
// the given user (or a placeholder) in memory.
package authstore

import (
	"sync"
)

// Snapshot is a consistent view of the store at one point in time.
type Snapshot struct {
	User          *User
	Authenticated bool
}

// Observer is called after the store state changes.
type Observer func(Snapshot)

type subscription struct {
	id uint64
	fn Observer
}

// Store is the holder of the current user. The zero value is not usable; call New.
type Store struct {
	mu   sync.RWMutex
	user *User

	obsMu     sync.Mutex
	observers []subscription
	nextID    uint64
}

// New creates an unauthenticated store.
func New() *Store {
	return &Store{}
}

// User returns a copy of the current user, or nil when nobody is logged in.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// IsAuthenticated reports whether a user is currently installed.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// Snapshot returns the user and the derived flag read under a single lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotOf(s.user)
}

// Login installs u as the current user, replacing whoever was logged in.
// A nil u installs DefaultUser. The user is copied; later changes to *u are not
// observed by the store.
func (s *Store) Login(u *User) {
	next := DefaultUser()
	if u != nil {
		next = *u
	}

	s.mu.Lock()
	s.user = &next
	snap := snapshotOf(s.user)
	s.mu.Unlock()

	s.notify(snap)
}

// Logout clears the current user. Calling it while logged out does nothing and
// does not notify observers.
func (s *Store) Logout() {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user = nil
	snap := snapshotOf(nil)
	s.mu.Unlock()

	s.notify(snap)
}

// Subscribe registers o to be called after each state change, in registration
// order. The returned function removes the observer and may be called more than once.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: o})
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for i, sub := range s.observers {
		if sub.id == id {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

// notify runs observers outside the state lock so they can read the store.
func (s *Store) notify(snap Snapshot) {
	s.obsMu.Lock()
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	s.obsMu.Unlock()

	for _, sub := range subs {
		sub.fn(Snapshot{User: cloneUser(snap.User), Authenticated: snap.Authenticated})
	}
}

func snapshotOf(u *User) Snapshot {
	return Snapshot{User: cloneUser(u), Authenticated: u != nil}
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
