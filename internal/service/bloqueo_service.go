package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/fecha"
	"github.com/ArojasJ/agendas-entregas/internal/model"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
)

type BloqueoService interface {
	// Bloquear closes one tipo on one fecha. Duplicate blocks are allowed and
	// harmless (blocking is idempotent in effect).
	Bloquear(ctx context.Context, req dto.BloquearDiaRequest) (*dto.DiaBloqueadoResponse, error)
	Desbloquear(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]dto.DiaBloqueadoResponse, error)
	EstaBloqueado(ctx context.Context, fechaStr, tipo string) (bool, error)
}

type bloqueoService struct {
	repo repository.DiaBloqueadoRepository
}

func NewBloqueoService(repo repository.DiaBloqueadoRepository) BloqueoService {
	return &bloqueoService{repo: repo}
}

func (s *bloqueoService) Bloquear(ctx context.Context, req dto.BloquearDiaRequest) (*dto.DiaBloqueadoResponse, error) {
	fechaNorm, err := fecha.Normalizar(req.Fecha)
	if err != nil {
		return nil, apierror.NuevoRechazo(apierror.CodigoCamposFaltantes, "Fecha invalida.")
	}
	d := &model.DiaBloqueado{
		Fecha:  fechaNorm,
		Tipo:   req.Tipo,
		Motivo: req.Motivo,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := dto.DesdeDiaBloqueado(d)
	return &resp, nil
}

func (s *bloqueoService) Desbloquear(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}

func (s *bloqueoService) Listar(ctx context.Context) ([]dto.DiaBloqueadoResponse, error) {
	dias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DiaBloqueadoResponse, len(dias))
	for i := range dias {
		resp[i] = dto.DesdeDiaBloqueado(&dias[i])
	}
	return resp, nil
}

func (s *bloqueoService) EstaBloqueado(ctx context.Context, fechaStr, tipo string) (bool, error) {
	return s.repo.Exists(ctx, fechaStr, tipo)
}
