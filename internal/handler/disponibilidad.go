package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/fecha"
	"github.com/ArojasJ/agendas-entregas/internal/model"
	"github.com/ArojasJ/agendas-entregas/internal/service"
)

// The slot count here feeds the public date picker, so staleness of a few
// seconds is acceptable; the authoritative check happens at booking time.
const disponibilidadCacheTTL = 30 * time.Second

// DisponibilidadHandler serves the public availability endpoint.
// No authentication required — read-only, no side effects.
type DisponibilidadHandler struct {
	agendas  service.AgendaService
	bloqueos service.BloqueoService
	rdb      *redis.Client
}

func NewDisponibilidadHandler(agendas service.AgendaService, bloqueos service.BloqueoService, rdb *redis.Client) *DisponibilidadHandler {
	return &DisponibilidadHandler{agendas: agendas, bloqueos: bloqueos, rdb: rdb}
}

// Get godoc
// @Summary Disponibilidad para una fecha (sin autenticacion)
// @Tags disponibilidad
// @Produce json
// @Param date query string true "Fecha YYYY-MM-DD"
// @Success 200 {object} dto.DisponibilidadResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/disponibilidad [get]
func (h *DisponibilidadHandler) Get(c *gin.Context) {
	fechaNorm, err := fecha.Normalizar(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro date invalido, se espera YYYY-MM-DD."))
		return
	}
	ctx := c.Request.Context()
	cacheKey := "disponibilidad:" + fechaNorm

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.DisponibilidadResponse
			if json.Unmarshal(cached, &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.consultar(ctx, fechaNorm)
	if err != nil {
		responderError(c, err)
		return
	}

	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, disponibilidadCacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DisponibilidadHandler) consultar(ctx context.Context, fechaNorm string) (*dto.DisponibilidadResponse, error) {
	restante, err := h.agendas.CupoRestante(ctx, fechaNorm)
	if err != nil {
		return nil, err
	}

	bloqueados := make([]string, 0, 2)
	for _, tipo := range []string{model.TipoBodega, model.TipoDomicilio} {
		b, err := h.bloqueos.EstaBloqueado(ctx, fechaNorm, tipo)
		if err != nil {
			return nil, err
		}
		if b {
			bloqueados = append(bloqueados, tipo)
		}
	}

	return &dto.DisponibilidadResponse{
		Fecha:           fechaNorm,
		CupoDomicilio:   restante,
		TiposBloqueados: bloqueados,
		DiasRecoleccion: fecha.ProximosDiasRecoleccion(time.Now(), 4),
	}, nil
}
