package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
)

func contextoConBody(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidateRechazaEnumInvalido(t *testing.T) {
	// Un estado de entrega fuera del set enumerado es error duro, nunca se
	// acepta ni se corrige en silencio.
	c, w := contextoConBody(t, `{"deliveryStatus":"en_camino"}`)

	var req dto.ActualizarEntregaRequest
	ok := bindAndValidate(c, &req)

	require.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "EstadoEntrega")
}

func TestBindAndValidateRechazaJSONInvalido(t *testing.T) {
	c, w := contextoConBody(t, `{`)

	var req dto.CrearAgendaRequest
	ok := bindAndValidate(c, &req)

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindAndValidateAceptaParcialValido(t *testing.T) {
	c, w := contextoConBody(t, `{"deliveryStatus":"entregado","amountDue":350.50}`)

	var req dto.ActualizarEntregaRequest
	ok := bindAndValidate(c, &req)

	require.True(t, ok)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, req.EstadoEntrega)
	assert.Equal(t, "entregado", *req.EstadoEntrega)
}

func TestResponderErrorMapeaCodigos(t *testing.T) {
	casos := []struct {
		err    error
		status int
		codigo string
	}{
		{apierror.ErrCupoAgotado, http.StatusBadRequest, apierror.CodigoCupoAgotado},
		{apierror.ErrDiaBloqueado, http.StatusBadRequest, apierror.CodigoDiaBloqueado},
		{apierror.ErrNoEncontrado, http.StatusNotFound, apierror.CodigoNoEncontrado},
		{apierror.ErrNoAutorizado, http.StatusUnauthorized, apierror.CodigoNoAutorizado},
	}
	for _, caso := range casos {
		c, w := contextoConBody(t, "")
		responderError(c, caso.err)

		assert.Equal(t, caso.status, w.Code)
		var resp apierror.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, caso.codigo, resp.Code)
	}
}

func TestResponderErrorOcultaErroresInternos(t *testing.T) {
	c, w := contextoConBody(t, "")
	responderError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
