package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-card-portfolio/models"
)

func TestNext_TransitionTable(t *testing.T) {
	states := []State{Anonymous, Authenticating, Authenticated, Rejected}
	events := []Event{BeginLogin, Succeed, Fail, Abort, Retry, Logout}

	allowed := map[State]map[Event]State{
		Anonymous:      {BeginLogin: Authenticating},
		Authenticating: {Succeed: Authenticated, Fail: Rejected, Abort: Anonymous},
		Rejected:       {Retry: Authenticating, Abort: Anonymous},
		Authenticated:  {Logout: Anonymous},
	}

	for _, from := range states {
		for _, ev := range events {
			t.Run(from.String()+"/"+ev.String(), func(t *testing.T) {
				to, err := Next(from, ev)

				want, ok := allowed[from][ev]
				if !ok {
					assert.ErrorIs(t, err, ErrInvalidTransition)
					assert.Equal(t, from, to)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, want, to)
			})
		}
	}
}

func TestSession_LoginCycle(t *testing.T) {
	s := NewSession()
	assert.Equal(t, Anonymous, s.State())

	_, err := s.User()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, s.Fire(BeginLogin))
	require.NoError(t, s.Fire(Fail))
	assert.Equal(t, Rejected, s.State())

	require.NoError(t, s.Fire(Retry))
	user := models.User{Username: "trainer1", Column: 6, ColumnLabel: "F", SessionID: "s-1"}
	require.NoError(t, s.Authenticate(user))
	assert.Equal(t, Authenticated, s.State())

	got, err := s.User()
	require.NoError(t, err)
	assert.Equal(t, user, got)

	require.NoError(t, s.Fire(Logout))
	assert.Equal(t, Anonymous, s.State())
	_, err = s.User()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSession_SucceedNeedsUser(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Fire(BeginLogin))

	assert.ErrorIs(t, s.Fire(Succeed), ErrInvalidTransition)
	assert.Equal(t, Authenticating, s.State())
}

func TestSession_AuthenticateFromAnonymous(t *testing.T) {
	s := NewSession()

	err := s.Authenticate(models.User{Username: "trainer1"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, Anonymous, s.State())
}

func TestSession_AbortFromRejected(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Fire(BeginLogin))
	require.NoError(t, s.Fire(Fail))

	require.NoError(t, s.Fire(Abort))
	assert.Equal(t, Anonymous, s.State())
}
