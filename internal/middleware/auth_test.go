package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretoPrueba = "secreto-de-prueba"

func tokenConRol(t *testing.T, rol string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"rol": rol,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	firmado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretoPrueba))
	require.NoError(t, err)
	return firmado
}

// servidorProtegido monta una ruta tras JWTAuth (y RequireRole si se piden
// roles) cuyo handler marca si fue alcanzado.
func servidorProtegido(roles ...string) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	alcanzado := new(bool)

	cadena := []gin.HandlerFunc{JWTAuth(secretoPrueba)}
	if len(roles) > 0 {
		cadena = append(cadena, RequireRole(roles...))
	}
	cadena = append(cadena, func(c *gin.Context) {
		*alcanzado = true
		c.Status(http.StatusOK)
	})
	r.GET("/protegido", cadena...)
	return r, alcanzado
}

func pedir(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthRechazaAntesDelHandler(t *testing.T) {
	casos := []struct {
		nombre string
		header string
	}{
		{"sin token", ""},
		{"esquema equivocado", "Basic abc123"},
		{"token basura", "Bearer no-es-un-jwt"},
		{"token expirado", "Bearer " + tokenConRol(t, "admin", time.Now().Add(-time.Hour))},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			r, alcanzado := servidorProtegido()
			w := pedir(r, caso.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *alcanzado, "el handler no debe ejecutarse sin token valido")
		})
	}
}

func TestJWTAuthRechazaFirmaAjena(t *testing.T) {
	ajeno, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"rol": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	r, alcanzado := servidorProtegido()
	w := pedir(r, "Bearer "+ajeno)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *alcanzado)
}

func TestJWTAuthAceptaTokenValido(t *testing.T) {
	r, alcanzado := servidorProtegido()
	w := pedir(r, "Bearer "+tokenConRol(t, "admin", time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *alcanzado)
}

func TestRequireRole(t *testing.T) {
	t.Run("rol permitido", func(t *testing.T) {
		r, alcanzado := servidorProtegido("admin")
		w := pedir(r, "Bearer "+tokenConRol(t, "admin", time.Now().Add(time.Hour)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *alcanzado)
	})

	t.Run("rol insuficiente", func(t *testing.T) {
		r, alcanzado := servidorProtegido("admin")
		w := pedir(r, "Bearer "+tokenConRol(t, "repartidor", time.Now().Add(time.Hour)))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, *alcanzado)
	})

	t.Run("varios roles permitidos", func(t *testing.T) {
		r, alcanzado := servidorProtegido("admin", "repartidor")
		w := pedir(r, "Bearer "+tokenConRol(t, "repartidor", time.Now().Add(time.Hour)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *alcanzado)
	})
}
