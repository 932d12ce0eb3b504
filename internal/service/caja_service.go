package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/model"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
)

type CajaService interface {
	// PrepararCorte computes the open reconciliation window: every domicilio
	// delivery marked entregado/efectivo created strictly after the last cut.
	PrepararCorte(ctx context.Context) (*dto.CortePreparadoResponse, error)
	// CrearCorte commits a cut. The read of the previous cut, the window
	// aggregation and the insert run in one transaction with the previous cut
	// locked, so concurrent cuts cannot double-count a window.
	CrearCorte(ctx context.Context, req dto.CrearCorteRequest) (*dto.CorteResponse, error)
	UltimoCorte(ctx context.Context) (*dto.CorteResponse, error)
	Historial(ctx context.Context) ([]dto.CorteResponse, error)
	// ObtenerCorte returns a committed cut with the deliveries of its window
	// (createdAt in (fromDatetime, createdAt]).
	ObtenerCorte(ctx context.Context, id uuid.UUID) (*dto.CorteDetalleResponse, error)
}

type cajaService struct {
	db         *gorm.DB // nil in unit tests; transactions collapse to direct calls
	repo       repository.CorteCajaRepository
	agendaRepo repository.AgendaRepository
}

func NewCajaService(db *gorm.DB, repo repository.CorteCajaRepository, agendaRepo repository.AgendaRepository) CajaService {
	return &cajaService{db: db, repo: repo, agendaRepo: agendaRepo}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── PrepararCorte ─────────────────────────────────────────────────────────────

func (s *cajaService) PrepararCorte(ctx context.Context) (*dto.CortePreparadoResponse, error) {
	ultimo, err := s.repo.UltimoCorte(ctx, model.RutaDefault)
	if err != nil {
		return nil, err
	}
	var desde *time.Time
	if ultimo != nil {
		t := ultimo.CreatedAt
		desde = &t
	}

	entregas, err := s.agendaRepo.EntregasVentana(ctx, desde, nil)
	if err != nil {
		return nil, err
	}

	monto := sumarMontos(entregas)
	resp := &dto.CortePreparadoResponse{
		Ruta:             model.RutaDefault,
		CajaInicial:      model.CajaInicial,
		MontoEntregas:    monto,
		EfectivoEsperado: model.CajaInicial.Add(monto),
		Entregas:         agendasAResponse(entregas),
	}
	if desde != nil {
		t := desde.Format(time.RFC3339)
		resp.DesdeDatetime = &t
	}
	return resp, nil
}

// ── CrearCorte ────────────────────────────────────────────────────────────────

func (s *cajaService) CrearCorte(ctx context.Context, req dto.CrearCorteRequest) (*dto.CorteResponse, error) {
	var corte *model.CorteCaja

	err := runTx(ctx, s.db, func(tx *gorm.DB) error {
		ultimo, err := s.repo.UltimoCorteTx(tx, model.RutaDefault)
		if err != nil {
			return err
		}
		var desde *time.Time
		if ultimo != nil {
			t := ultimo.CreatedAt
			desde = &t
		}

		entregas, err := s.agendaRepo.EntregasVentanaTx(tx, desde, nil)
		if err != nil {
			return err
		}

		monto := sumarMontos(entregas)
		esperado := model.CajaInicial.Add(monto)
		corte = &model.CorteCaja{
			Ruta:             model.RutaDefault,
			DesdeDatetime:    desde,
			CajaInicial:      model.CajaInicial,
			MontoEntregas:    monto,
			EfectivoEsperado: esperado,
			EfectivoContado:  req.EfectivoContado,
			Diferencia:       req.EfectivoContado.Sub(esperado),
			Nota:             req.Nota,
		}
		return s.repo.CreateTx(tx, corte)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.DesdeCorte(corte)
	return &resp, nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *cajaService) UltimoCorte(ctx context.Context) (*dto.CorteResponse, error) {
	ultimo, err := s.repo.UltimoCorte(ctx, model.RutaDefault)
	if err != nil {
		return nil, err
	}
	if ultimo == nil {
		return nil, nil
	}
	resp := dto.DesdeCorte(ultimo)
	return &resp, nil
}

func (s *cajaService) Historial(ctx context.Context) ([]dto.CorteResponse, error) {
	cortes, err := s.repo.List(ctx, model.RutaDefault)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CorteResponse, len(cortes))
	for i := range cortes {
		resp[i] = dto.DesdeCorte(&cortes[i])
	}
	return resp, nil
}

func (s *cajaService) ObtenerCorte(ctx context.Context, id uuid.UUID) (*dto.CorteDetalleResponse, error) {
	corte, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}

	hasta := corte.CreatedAt
	entregas, err := s.agendaRepo.EntregasVentana(ctx, corte.DesdeDatetime, &hasta)
	if err != nil {
		return nil, err
	}

	return &dto.CorteDetalleResponse{
		Corte:    dto.DesdeCorte(corte),
		Entregas: agendasAResponse(entregas),
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sumarMontos(entregas []model.Agenda) decimal.Decimal {
	total := decimal.Zero
	for i := range entregas {
		total = total.Add(entregas[i].MontoCobrar)
	}
	return total
}

func agendasAResponse(agendas []model.Agenda) []dto.AgendaResponse {
	resp := make([]dto.AgendaResponse, len(agendas))
	for i := range agendas {
		resp[i] = dto.DesdeAgenda(&agendas[i])
	}
	return resp
}
