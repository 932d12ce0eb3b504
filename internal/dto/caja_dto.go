package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCorteRequest struct {
	EfectivoContado decimal.Decimal `json:"countedCash" validate:"min=0"`
	Nota            *string         `json:"note"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CorteResponse struct {
	ID               string          `json:"id"`
	Ruta             string          `json:"route"`
	DesdeDatetime    *string         `json:"fromDatetime"`
	CajaInicial      decimal.Decimal `json:"initialCash"`
	MontoEntregas    decimal.Decimal `json:"deliveriesAmount"`
	EfectivoEsperado decimal.Decimal `json:"expectedCash"`
	EfectivoContado  decimal.Decimal `json:"countedCash"`
	Diferencia       decimal.Decimal `json:"difference"`
	Nota             *string         `json:"note"`
	CreatedAt        string          `json:"createdAt"`
}

func DesdeCorte(c *model.CorteCaja) CorteResponse {
	resp := CorteResponse{
		ID:               c.ID.String(),
		Ruta:             c.Ruta,
		CajaInicial:      c.CajaInicial,
		MontoEntregas:    c.MontoEntregas,
		EfectivoEsperado: c.EfectivoEsperado,
		EfectivoContado:  c.EfectivoContado,
		Diferencia:       c.Diferencia,
		Nota:             c.Nota,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
	if c.DesdeDatetime != nil {
		t := c.DesdeDatetime.Format(time.RFC3339)
		resp.DesdeDatetime = &t
	}
	return resp
}

// CortePreparadoResponse is the pre-commit preview: what the cash box should
// hold right now, and which deliveries back that number.
type CortePreparadoResponse struct {
	Ruta             string           `json:"route"`
	DesdeDatetime    *string          `json:"fromDatetime"`
	CajaInicial      decimal.Decimal  `json:"initialCash"`
	MontoEntregas    decimal.Decimal  `json:"deliveriesAmount"`
	EfectivoEsperado decimal.Decimal  `json:"expectedCash"`
	Entregas         []AgendaResponse `json:"deliveries"`
}

// CorteDetalleResponse is a committed cut plus the deliveries of its window.
type CorteDetalleResponse struct {
	Corte    CorteResponse    `json:"cut"`
	Entregas []AgendaResponse `json:"deliveries"`
}
