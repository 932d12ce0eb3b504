package model

import (
	"time"

	"github.com/google/uuid"
)

// DiaBloqueado is an administrative closure of one service tipo on one fecha.
// Created and deleted by staff; no automatic expiry. Duplicate blocks for the
// same (fecha, tipo) are allowed and harmless.
type DiaBloqueado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha     string    `gorm:"type:varchar(10);not null;index:idx_bloqueados_fecha_tipo"`
	Tipo      string    `gorm:"type:varchar(20);not null;index:idx_bloqueados_fecha_tipo"`
	Motivo    *string
	CreatedAt time.Time
}

func (DiaBloqueado) TableName() string { return "dias_bloqueados" }
