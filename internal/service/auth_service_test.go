package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/config"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
)

func configAuthPrueba(t *testing.T) *config.Config {
	t.Helper()
	admin, err := bcrypt.GenerateFromPassword([]byte("clave-admin"), bcrypt.MinCost)
	require.NoError(t, err)
	driver, err := bcrypt.GenerateFromPassword([]byte("clave-ruta"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 12,
		AdminPasswordHash:  string(admin),
		DriverPasswordHash: string(driver),
	}
}

func TestLoginPorRol(t *testing.T) {
	cfg := configAuthPrueba(t)
	svc := NewAuthService(cfg)
	ctx := context.Background()

	casos := []struct {
		password string
		rol      string
	}{
		{"clave-admin", RolAdmin},
		{"clave-ruta", RolRepartidor},
	}
	for _, c := range casos {
		resp, err := svc.Login(ctx, dto.LoginRequest{Password: c.password})
		require.NoError(t, err)
		assert.Equal(t, c.rol, resp.Rol)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, 12*3600, resp.ExpiresIn)

		token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		require.NoError(t, err)
		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, c.rol, claims["rol"])
	}
}

func TestLoginRechazado(t *testing.T) {
	svc := NewAuthService(configAuthPrueba(t))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Password: "otra"})
	var rechazo *apierror.Rechazo
	require.ErrorAs(t, err, &rechazo)
	assert.Equal(t, apierror.CodigoNoAutorizado, rechazo.Codigo)
}
