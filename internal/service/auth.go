package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials never says whether the user or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the admin area behind a single fixed credential pair
// and a boolean session flag. This is a placeholder gate, not a security
// boundary.
type AuthService struct {
	sessions SessionRepository
	user     string
	hash     []byte
}

func NewAuthService(sessions SessionRepository, username, password string) *AuthService {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &AuthService{sessions: sessions, user: username, hash: hash}
}

func (s *AuthService) Login(user, pass string) error {
	userOK := user == s.user
	passOK := bcrypt.CompareHashAndPassword(s.hash, []byte(pass)) == nil
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return s.sessions.SetAuthenticated(true)
}

func (s *AuthService) Logout() error {
	return s.sessions.SetAuthenticated(false)
}

func (s *AuthService) IsAuthenticated() bool {
	return s.sessions.IsAuthenticated()
}

var _ AuthServiceInterface = (*AuthService)(nil)
