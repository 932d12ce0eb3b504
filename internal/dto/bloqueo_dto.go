package dto

import (
	"time"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

type BloquearDiaRequest struct {
	Fecha  string  `json:"date"   validate:"required"`
	Tipo   string  `json:"type"   validate:"required,oneof=bodega domicilio"`
	Motivo *string `json:"reason"`
}

type DiaBloqueadoResponse struct {
	ID        string  `json:"id"`
	Fecha     string  `json:"date"`
	Tipo      string  `json:"type"`
	Motivo    *string `json:"reason"`
	CreatedAt string  `json:"createdAt"`
}

func DesdeDiaBloqueado(d *model.DiaBloqueado) DiaBloqueadoResponse {
	return DiaBloqueadoResponse{
		ID:        d.ID.String(),
		Fecha:     d.Fecha,
		Tipo:      d.Tipo,
		Motivo:    d.Motivo,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
