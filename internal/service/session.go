// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// State is a state of the account session.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Rejected
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event drives a session from one state to the next.
type Event int

const (
	BeginLogin Event = iota
	Succeed
	Fail
	Abort
	Retry
	Logout
)

func (e Event) String() string {
	switch e {
	case BeginLogin:
		return "begin-login"
	case Succeed:
		return "succeed"
	case Fail:
		return "fail"
	case Abort:
		return "abort"
	case Retry:
		return "retry"
	case Logout:
		return "logout"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

type transitionKey struct {
	from  State
	event Event
}

var transitions = map[transitionKey]State{
	{Anonymous, BeginLogin}:   Authenticating,
	{Authenticating, Succeed}: Authenticated,
	{Authenticating, Fail}:    Rejected,
	{Authenticating, Abort}:   Anonymous,
	{Rejected, Retry}:         Authenticating,
	{Rejected, Abort}:         Anonymous,
	{Authenticated, Logout}:   Anonymous,
}

// Next returns the state reached from from on event, or ErrInvalidTransition.
func Next(from State, event Event) (State, error) {
	to, ok := transitions[transitionKey{from, event}]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, from)
	}
	return to, nil
}

// Session is the account session of the interactive user. The User handle
// is bound on Succeed and dropped on every transition out of Authenticated.
type Session struct {
	mu    sync.Mutex
	state State
	user  models.User
}

func NewSession() *Session {
	return &Session{state: Anonymous}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fire applies event. Succeed must go through Authenticate.
func (s *Session) Fire(event Event) error {
	if event == Succeed {
		return fmt.Errorf("%w: succeed needs a user", ErrInvalidTransition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	to, err := Next(s.state, event)
	if err != nil {
		return err
	}
	s.state = to
	s.user = models.User{}
	return nil
}

// Authenticate fires Succeed and binds user to the session.
func (s *Session) Authenticate(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	to, err := Next(s.state, Succeed)
	if err != nil {
		return err
	}
	s.state = to
	s.user = user
	return nil
}

// User returns the bound user, or ErrNotAuthenticated.
func (s *Session) User() (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Authenticated {
		return models.User{}, ErrNotAuthenticated
	}
	return s.user, nil
}
