package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rodamoinho/recibos-api/pkg/apperror"
	"github.com/rodamoinho/recibos-api/pkg/utils"
)

// AuthService guards the restricted area (history and profile
// mutation) behind the single operator password.
type AuthService struct {
	passwordHash []byte
	jwtManager   *utils.JWTManager
}

// NewAuthService hashes the configured admin password and keeps it for
// comparison; the plaintext is never retained.
func NewAuthService(adminPassword string, jwtManager *utils.JWTManager) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{passwordHash: hash, jwtManager: jwtManager}, nil
}

// Login exchanges the admin password for a session token.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", apperror.NewAppError(401, "Incorrect password")
	}
	return s.jwtManager.GenerateToken()
}
