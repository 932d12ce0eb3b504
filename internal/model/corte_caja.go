package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RutaDefault identifies the single cash box reconciled in current scope.
const RutaDefault = "noreste"

// CajaInicial is the fixed starting float of the cash box.
var CajaInicial = decimal.NewFromInt(300)

// CorteCaja is an append-only cash reconciliation snapshot. Cuts are never
// mutated or deleted; each cut's CreatedAt becomes the next cut's
// DesdeDatetime, chaining the reconciliation windows.
type CorteCaja struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Ruta string    `gorm:"type:varchar(30);not null;index"`
	// DesdeDatetime is the previous cut's CreatedAt — the window's exclusive
	// lower bound. Nil for the first cut ever (unbounded window).
	DesdeDatetime    *time.Time
	CajaInicial      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MontoEntregas    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EfectivoEsperado decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EfectivoContado  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Diferencia = EfectivoContado - EfectivoEsperado; may be negative and is
	// purely informational.
	Diferencia decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Nota       *string
	CreatedAt  time.Time `gorm:"index"`
}

func (CorteCaja) TableName() string { return "cortes_caja" }
