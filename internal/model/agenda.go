package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Delivery modes.
const (
	TipoBodega     = "bodega"
	TipoDomicilio  = "domicilio"
	TipoPaqueteria = "paqueteria"
)

// Paquetería quotation states.
const (
	StatusPendiente = "pendiente"
	StatusCotizado  = "cotizado"
)

// Delivery lifecycle states.
const (
	EntregaPendiente   = "pendiente"
	EntregaEntregado   = "entregado"
	EntregaNoEntregado = "no_entregado"
)

// Payment methods.
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
)

// CupoDomicilio is the fixed daily limit for home deliveries.
const CupoDomicilio = 15

// Agenda is one delivery reservation.
// Tipo is immutable after creation. Fecha is a canonical YYYY-MM-DD calendar
// date; for paquetería it is the creation date, not a scheduled slot.
type Agenda struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo string    `gorm:"type:varchar(20);not null;index:idx_agendas_tipo_fecha"`
	// Dia is the derived pickup-day label ("tuesday" | "thursday"), recomputed
	// whenever Fecha changes; nil for any other weekday.
	Dia *string `gorm:"type:varchar(10)"`
	// Stored as text, not as a SQL date: a date column scans back through
	// database/sql as an RFC 3339 timestamp and would break the canonical
	// form. YYYY-MM-DD text compares and ranges correctly either way.
	Fecha string `gorm:"type:varchar(10);not null;index:idx_agendas_tipo_fecha"`

	Instagram      string `gorm:"not null"`
	NombreCompleto string `gorm:"not null"`
	Telefono       string `gorm:"type:varchar(10);not null"`

	Direccion    *string
	Ciudad       *string
	Estado       *string
	CodigoPostal *string `gorm:"type:varchar(5)"`
	Notas        *string

	// Status is the paquetería quotation state; nil for other tipos.
	Status *string `gorm:"type:varchar(20)"`
	// Override marks staff-created bookings that bypassed standard validation.
	Override bool `gorm:"not null;default:false"`

	Productos     *string
	MontoCobrar   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	EstadoEntrega string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	MetodoPago    string          `gorm:"type:varchar(20);not null;default:'efectivo'"`
	EntregadoAt   *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// RecalcularEntregadoAt re-derives the delivered-timestamp invariant:
// EntregadoAt is non-nil iff EstadoEntrega == entregado AND MetodoPago ==
// efectivo. The first qualifying transition wins — re-marking as delivered
// does not refresh an already-set timestamp.
func (a *Agenda) RecalcularEntregadoAt(ahora time.Time) {
	if a.EstadoEntrega == EntregaEntregado && a.MetodoPago == PagoEfectivo {
		if a.EntregadoAt == nil {
			t := ahora
			a.EntregadoAt = &t
		}
		return
	}
	a.EntregadoAt = nil
}

func (Agenda) TableName() string { return "agendas" }
