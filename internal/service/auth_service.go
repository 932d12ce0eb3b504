package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/config"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
)

// Staff roles. The admin password unlocks everything; the driver password
// only unlocks reading and updating the domicilio delivery route.
const (
	RolAdmin      = "admin"
	RolRepartidor = "repartidor"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login maps the shared staff password onto a role and issues an HMAC-signed,
// expiring token carrying that role. There is no user table: two passwords,
// two roles.
func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	rol, ok := s.resolverRol(req.Password)
	if !ok {
		return nil, apierror.NuevoRechazo(apierror.CodigoNoAutorizado, "Contrasena incorrecta.")
	}

	ahora := time.Now()
	claims := jwt.MapClaims{
		"rol": rol,
		"exp": ahora.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat": ahora.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Rol:         rol,
	}, nil
}

func (s *authService) resolverRol(password string) (string, bool) {
	if s.cfg.AdminPasswordHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil {
		return RolAdmin, true
	}
	if s.cfg.DriverPasswordHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(s.cfg.DriverPasswordHash), []byte(password)) == nil {
		return RolRepartidor, true
	}
	return "", false
}
