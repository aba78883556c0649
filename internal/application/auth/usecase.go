package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
	"github.com/chichilu/closet-api/pkg/jwt"
)

// UseCase autentica al único administrador de la tienda contra el hash
// bcrypt de la configuración y emite el token de sesión.
type UseCase struct {
	passwordHash string
	jwtSecret    string
	jwtIssuer    string
	expMinutes   int
}

// NewUseCase construye el caso de uso.
func NewUseCase(passwordHash, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		jwtIssuer:    jwtIssuer,
		expMinutes:   expMinutes,
	}
}

// Login compara la contraseña contra el hash configurado y devuelve un JWT.
// ErrUnauthorized si no coincide.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, "admin", uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
