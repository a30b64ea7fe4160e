package service_test

import (
	"testing"

	"jolof-kitchen/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	authed bool
}

func (f *fakeSessionRepo) IsAuthenticated() bool {
	return f.authed
}

func (f *fakeSessionRepo) SetAuthenticated(v bool) error {
	f.authed = v
	return nil
}

var _ service.SessionRepository = (*fakeSessionRepo)(nil)

func newAuth() (*service.AuthService, *fakeSessionRepo) {
	sessions := &fakeSessionRepo{}
	return service.NewAuthService(sessions, "admin", "admin123"), sessions
}

func TestLoginSuccessSetsFlag(t *testing.T) {
	svc, _ := newAuth()

	require.NoError(t, svc.Login("admin", "admin123"))
	assert.True(t, svc.IsAuthenticated())
}

func TestLoginFailureLeavesFlagUntouched(t *testing.T) {
	tests := []struct {
		name string
		user string
		pass string
	}{
		{"unknown user", "x", "y"},
		{"wrong password", "admin", "admin124"},
		{"empty credentials", "", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, sessions := newAuth()

			err := svc.Login(testCase.user, testCase.pass)
			assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			assert.False(t, sessions.authed)
		})
	}
}

func TestLogoutClearsFlag(t *testing.T) {
	svc, _ := newAuth()

	require.NoError(t, svc.Login("admin", "admin123"))
	require.NoError(t, svc.Logout())
	assert.False(t, svc.IsAuthenticated())

	// logging out while logged out is fine
	assert.NoError(t, svc.Logout())
}
