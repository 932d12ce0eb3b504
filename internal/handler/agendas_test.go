package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
)

// stubAgendaService records the Crear call and answers with canned values.
type stubAgendaService struct {
	resp     *dto.AgendaResponse
	err      error
	llamadas int
	override bool
}

func (s *stubAgendaService) Crear(_ context.Context, _ dto.CrearAgendaRequest, override bool) (*dto.AgendaResponse, error) {
	s.llamadas++
	s.override = override
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubAgendaService) Listar(context.Context, repository.AgendaFilter, string) ([]dto.AgendaResponse, error) {
	return nil, nil
}

func (s *stubAgendaService) ActualizarEntrega(context.Context, uuid.UUID, dto.ActualizarEntregaRequest, string) (*dto.AgendaResponse, error) {
	return nil, nil
}

func (s *stubAgendaService) Reagendar(context.Context, uuid.UUID, dto.ReagendarRequest) (*dto.AgendaResponse, error) {
	return nil, nil
}

func (s *stubAgendaService) MarcarStatus(context.Context, uuid.UUID, dto.ActualizarStatusRequest) (*dto.AgendaResponse, error) {
	return nil, nil
}

func (s *stubAgendaService) Eliminar(context.Context, uuid.UUID) error { return nil }

func (s *stubAgendaService) CupoRestante(context.Context, string) (int, error) { return 0, nil }

func servidorAgendas(svc *stubAgendaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAgendasHandler(svc)
	r.POST("/v1/agendas", h.Crear)
	return r
}

func postAgenda(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/agendas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const bodyDomicilio = `{
	"type": "domicilio",
	"date": "2030-06-05",
	"instagram": "@cliente",
	"fullName": "Ana Lopez",
	"phone": "8110001122",
	"address": "Calle 1 #23",
	"city": "Monterrey",
	"state": "NL",
	"postalCode": "64000"
}`

func TestCrearAgendaOK(t *testing.T) {
	svc := &stubAgendaService{resp: &dto.AgendaResponse{
		ID:    uuid.NewString(),
		Tipo:  "domicilio",
		Fecha: "2030-06-05",
	}}
	w := postAgenda(servidorAgendas(svc), bodyDomicilio)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.llamadas)
	assert.False(t, svc.override, "la ruta publica nunca pide override")

	var resp dto.AgendaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, svc.resp.ID, resp.ID)
}

func TestCrearAgendaMapeaRechazos(t *testing.T) {
	casos := []struct {
		err    error
		status int
		codigo string
	}{
		{apierror.ErrDiaBloqueado, http.StatusBadRequest, apierror.CodigoDiaBloqueado},
		{apierror.ErrCupoAgotado, http.StatusBadRequest, apierror.CodigoCupoAgotado},
		{apierror.ErrMismoDia, http.StatusBadRequest, apierror.CodigoMismoDia},
	}
	for _, caso := range casos {
		svc := &stubAgendaService{err: caso.err}
		w := postAgenda(servidorAgendas(svc), bodyDomicilio)

		assert.Equal(t, caso.status, w.Code)
		var resp apierror.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, caso.codigo, resp.Code)
	}
}

func TestCrearAgendaEnumInvalidoNoLlegaAlServicio(t *testing.T) {
	svc := &stubAgendaService{}
	w := postAgenda(servidorAgendas(svc), `{"type":"drone","date":"2030-06-05"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, svc.llamadas)
}
