package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chichilu/closet-api/internal/application/auth"
	"github.com/chichilu/closet-api/internal/application/dto"
	"github.com/chichilu/closet-api/internal/domain"
	pkgjwt "github.com/chichilu/closet-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T, password string) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(string(hash), testSecret, "closet-api-test", 60)
}

func TestLogin_CorrectaEmiteToken(t *testing.T) {
	uc := newUseCase(t, "secreta123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Password: "secreta123"})
	require.NoError(t, err)

	subject, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_Incorrecta(t *testing.T) {
	uc := newUseCase(t, "secreta123")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
