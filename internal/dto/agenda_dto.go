package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearAgendaRequest carries a booking request. Field names match the public
// client wire format. Presence of the five core fields is checked by the
// booking validator (first rule, first failure wins) rather than by `required`
// tags, so the caller gets the missing-fields rejection the UI expects.
type CrearAgendaRequest struct {
	Tipo           string  `json:"type"       validate:"omitempty,oneof=bodega domicilio paqueteria"`
	Fecha          string  `json:"date"`
	Instagram      string  `json:"instagram"`
	NombreCompleto string  `json:"fullName"`
	Telefono       string  `json:"phone"      validate:"omitempty,numeric,max=10"`
	Direccion      *string `json:"address"`
	Ciudad         *string `json:"city"`
	Estado         *string `json:"state"`
	CodigoPostal   *string `json:"postalCode"`
	Notas          *string `json:"notes"`

	// Lifecycle fields — honored only on the privileged manual endpoint.
	Productos     *string          `json:"products"`
	MontoCobrar   *decimal.Decimal `json:"amountDue"      validate:"omitempty,min=0"`
	EstadoEntrega *string          `json:"deliveryStatus" validate:"omitempty,oneof=pendiente entregado no_entregado"`
	MetodoPago    *string          `json:"paymentMethod"  validate:"omitempty,oneof=efectivo transferencia"`
}

// ActualizarEntregaRequest is an atomic partial update of a booking's
// delivery lifecycle. Values outside the enumerated sets are rejected with a
// validation error, never silently coerced.
type ActualizarEntregaRequest struct {
	Productos     *string          `json:"products"`
	MontoCobrar   *decimal.Decimal `json:"amountDue"      validate:"omitempty,min=0"`
	EstadoEntrega *string          `json:"deliveryStatus" validate:"omitempty,oneof=pendiente entregado no_entregado"`
	MetodoPago    *string          `json:"paymentMethod"  validate:"omitempty,oneof=efectivo transferencia"`
}

type ReagendarRequest struct {
	Fecha string `json:"date" validate:"required"`
}

type ActualizarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendiente cotizado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AgendaResponse struct {
	ID             string           `json:"id"`
	Tipo           string           `json:"type"`
	Dia            *string          `json:"day"`
	Fecha          string           `json:"date"`
	Instagram      string           `json:"instagram"`
	NombreCompleto string           `json:"fullName"`
	Telefono       string           `json:"phone"`
	Direccion      *string          `json:"address"`
	Ciudad         *string          `json:"city"`
	Estado         *string          `json:"state"`
	CodigoPostal   *string          `json:"postalCode"`
	Notas          *string          `json:"notes"`
	Status         *string          `json:"status"`
	Override       bool             `json:"override"`
	Productos      *string          `json:"products"`
	MontoCobrar    decimal.Decimal  `json:"amountDue"`
	EstadoEntrega  string           `json:"deliveryStatus"`
	MetodoPago     string           `json:"paymentMethod"`
	EntregadoAt    *string          `json:"deliveredAt"`
	CreatedAt      string           `json:"createdAt"`
}

// DesdeAgenda maps a model row onto the wire representation.
func DesdeAgenda(a *model.Agenda) AgendaResponse {
	resp := AgendaResponse{
		ID:             a.ID.String(),
		Tipo:           a.Tipo,
		Dia:            a.Dia,
		Fecha:          a.Fecha,
		Instagram:      a.Instagram,
		NombreCompleto: a.NombreCompleto,
		Telefono:       a.Telefono,
		Direccion:      a.Direccion,
		Ciudad:         a.Ciudad,
		Estado:         a.Estado,
		CodigoPostal:   a.CodigoPostal,
		Notas:          a.Notas,
		Status:         a.Status,
		Override:       a.Override,
		Productos:      a.Productos,
		MontoCobrar:    a.MontoCobrar,
		EstadoEntrega:  a.EstadoEntrega,
		MetodoPago:     a.MetodoPago,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
	if a.EntregadoAt != nil {
		t := a.EntregadoAt.Format(time.RFC3339)
		resp.EntregadoAt = &t
	}
	return resp
}

// DisponibilidadResponse feeds the public date picker. The slot count is
// presentation-only; the authoritative check happens at booking time.
type DisponibilidadResponse struct {
	Fecha           string   `json:"date"`
	CupoDomicilio   int      `json:"remainingHomeSlots"`
	TiposBloqueados []string `json:"blockedTypes"`
	DiasRecoleccion []string `json:"pickupDays"`
}
