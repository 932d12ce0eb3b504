package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ArojasJ/agendas-entregas/internal/apierror"
	"github.com/ArojasJ/agendas-entregas/internal/dto"
	"github.com/ArojasJ/agendas-entregas/internal/fecha"
	"github.com/ArojasJ/agendas-entregas/internal/model"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
	"github.com/ArojasJ/agendas-entregas/internal/worker"
)

type AgendaService interface {
	// Crear runs the booking rule engine and persists the accepted booking.
	// override=true is the staff path: rules after the blocked-day gate are
	// skipped and the record is trusted as given.
	Crear(ctx context.Context, req dto.CrearAgendaRequest, override bool) (*dto.AgendaResponse, error)
	Listar(ctx context.Context, f repository.AgendaFilter, rol string) ([]dto.AgendaResponse, error)
	ActualizarEntrega(ctx context.Context, id uuid.UUID, req dto.ActualizarEntregaRequest, rol string) (*dto.AgendaResponse, error)
	Reagendar(ctx context.Context, id uuid.UUID, req dto.ReagendarRequest) (*dto.AgendaResponse, error)
	MarcarStatus(ctx context.Context, id uuid.UUID, req dto.ActualizarStatusRequest) (*dto.AgendaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// CupoRestante reports the remaining domicilio slots for a date, clamped
	// at zero.
	CupoRestante(ctx context.Context, fechaStr string) (int, error)
}

type agendaService struct {
	repo       repository.AgendaRepository
	bloqueos   repository.DiaBloqueadoRepository
	dispatcher *worker.Dispatcher // nil when notifications are disabled
	notifyTo   string
}

func NewAgendaService(repo repository.AgendaRepository, bloqueos repository.DiaBloqueadoRepository, dispatcher *worker.Dispatcher, notifyTo string) AgendaService {
	return &agendaService{repo: repo, bloqueos: bloqueos, dispatcher: dispatcher, notifyTo: notifyTo}
}

var cpRegexp = regexp.MustCompile(`^[0-9]{5}$`)

// ── Crear ─────────────────────────────────────────────────────────────────────
// Rules run in order; the first failure wins.

func (s *agendaService) Crear(ctx context.Context, req dto.CrearAgendaRequest, override bool) (*dto.AgendaResponse, error) {
	// 1. Required fields
	if req.Tipo == "" || req.Instagram == "" || req.NombreCompleto == "" || req.Telefono == "" || req.Fecha == "" {
		return nil, apierror.ErrCamposFaltantes
	}
	// The DTO enforces the enum on the wire; this guards direct callers.
	switch req.Tipo {
	case model.TipoBodega, model.TipoDomicilio, model.TipoPaqueteria:
	default:
		return nil, apierror.NuevoRechazo(apierror.CodigoCamposFaltantes, "Tipo de entrega invalido.")
	}

	fechaNorm, err := fecha.Normalizar(req.Fecha)
	if err != nil {
		return nil, apierror.NuevoRechazo(apierror.CodigoCamposFaltantes, "Fecha invalida.")
	}
	// Paquetería is a same-day quotation request: it is recorded on its
	// creation date, never on a scheduled slot.
	if req.Tipo == model.TipoPaqueteria {
		fechaNorm = fecha.Hoy()
	}

	// 2. Blocked day — applies to scheduled tipos unless staff overrides
	if !override && (req.Tipo == model.TipoBodega || req.Tipo == model.TipoDomicilio) {
		bloqueado, err := s.bloqueos.Exists(ctx, fechaNorm, req.Tipo)
		if err != nil {
			return nil, err
		}
		if bloqueado {
			return nil, apierror.ErrDiaBloqueado
		}
	}

	a := s.construirAgenda(req, fechaNorm, override)

	// 3. Override: trusted staff record, remaining rules skipped
	if override {
		if err := s.repo.Create(ctx, a); err != nil {
			return nil, err
		}
		s.notificar(ctx, a)
		resp := dto.DesdeAgenda(a)
		return &resp, nil
	}

	ahora := time.Now()
	switch req.Tipo {
	case model.TipoBodega:
		// 4. Tomorrow or later, in local calendar terms
		if !fecha.EsPosteriorAHoy(fechaNorm, ahora) {
			return nil, apierror.ErrMismoDia
		}
		// 5. Pickup happens only on tuesdays and thursdays
		if a.Dia == nil {
			return nil, apierror.ErrDiaRecoleccion
		}
		if err := s.repo.Create(ctx, a); err != nil {
			return nil, err
		}

	case model.TipoDomicilio:
		if !fecha.EsPosteriorAHoy(fechaNorm, ahora) {
			return nil, apierror.ErrMismoDia
		}
		// 6. Location fields, then capacity
		if vacio(req.Ciudad) || vacio(req.Estado) || vacio(req.CodigoPostal) {
			return nil, apierror.ErrUbicacionFaltante
		}
		if !cpRegexp.MatchString(*req.CodigoPostal) {
			return nil, apierror.ErrCPInvalido
		}
		// Count and insert inside one guarded transaction (no lost slot races)
		if err := s.repo.CreateDomicilioConCupo(ctx, a, model.CupoDomicilio); err != nil {
			if errors.Is(err, repository.ErrCupoAgotado) {
				return nil, apierror.ErrCupoAgotado
			}
			return nil, err
		}

	case model.TipoPaqueteria:
		// 7. No date or capacity rule — quotation starts pendiente
		if err := s.repo.Create(ctx, a); err != nil {
			return nil, err
		}
	}

	s.notificar(ctx, a)
	resp := dto.DesdeAgenda(a)
	return &resp, nil
}

// construirAgenda assembles the record with lifecycle defaults; explicit
// lifecycle values from the privileged caller win over the defaults.
func (s *agendaService) construirAgenda(req dto.CrearAgendaRequest, fechaNorm string, override bool) *model.Agenda {
	a := &model.Agenda{
		Tipo:           req.Tipo,
		Fecha:          fechaNorm,
		Instagram:      normalizarInstagram(req.Instagram),
		NombreCompleto: strings.TrimSpace(req.NombreCompleto),
		Telefono:       strings.TrimSpace(req.Telefono),
		Direccion:      req.Direccion,
		Ciudad:         req.Ciudad,
		Estado:         req.Estado,
		CodigoPostal:   req.CodigoPostal,
		Notas:          req.Notas,
		Override:       override,
		Productos:      req.Productos,
		MontoCobrar:    decimal.Zero,
		EstadoEntrega:  model.EntregaPendiente,
		MetodoPago:     model.PagoEfectivo,
	}
	if etiqueta := fecha.DiaRecoleccion(fechaNorm); etiqueta != "" {
		a.Dia = &etiqueta
	}
	if req.Tipo == model.TipoPaqueteria {
		status := model.StatusPendiente
		a.Status = &status
	}
	if req.MontoCobrar != nil {
		a.MontoCobrar = *req.MontoCobrar
	}
	if req.EstadoEntrega != nil {
		a.EstadoEntrega = *req.EstadoEntrega
	}
	if req.MetodoPago != nil {
		a.MetodoPago = *req.MetodoPago
	}
	a.RecalcularEntregadoAt(time.Now())
	return a
}

// ── Listar ────────────────────────────────────────────────────────────────────

func (s *agendaService) Listar(ctx context.Context, f repository.AgendaFilter, rol string) ([]dto.AgendaResponse, error) {
	// Drivers only work the home delivery route
	if rol == RolRepartidor {
		f.Tipo = model.TipoDomicilio
	}
	agendas, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AgendaResponse, len(agendas))
	for i := range agendas {
		resp[i] = dto.DesdeAgenda(&agendas[i])
	}
	return resp, nil
}

// ── ActualizarEntrega ─────────────────────────────────────────────────────────
// Atomic partial update of the delivery lifecycle. The delivered-timestamp
// invariant is re-derived on every update, not merely set once.

func (s *agendaService) ActualizarEntrega(ctx context.Context, id uuid.UUID, req dto.ActualizarEntregaRequest, rol string) (*dto.AgendaResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if rol == RolRepartidor && a.Tipo != model.TipoDomicilio {
		return nil, apierror.ErrNoAutorizado
	}

	if req.Productos != nil {
		a.Productos = req.Productos
	}
	if req.MontoCobrar != nil {
		a.MontoCobrar = *req.MontoCobrar
	}
	if req.EstadoEntrega != nil {
		a.EstadoEntrega = *req.EstadoEntrega
	}
	if req.MetodoPago != nil {
		a.MetodoPago = *req.MetodoPago
	}
	a.RecalcularEntregadoAt(time.Now())

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := dto.DesdeAgenda(a)
	return &resp, nil
}

// ── Reagendar ─────────────────────────────────────────────────────────────────
// Trusted staff operation: the new date is taken as-is, only the pickup-day
// label is recomputed. No blocking/capacity/advance-notice re-check.

func (s *agendaService) Reagendar(ctx context.Context, id uuid.UUID, req dto.ReagendarRequest) (*dto.AgendaResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	fechaNorm, err := fecha.Normalizar(req.Fecha)
	if err != nil {
		return nil, apierror.NuevoRechazo(apierror.CodigoCamposFaltantes, "Fecha invalida.")
	}

	a.Fecha = fechaNorm
	a.Dia = nil
	if etiqueta := fecha.DiaRecoleccion(fechaNorm); etiqueta != "" {
		a.Dia = &etiqueta
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := dto.DesdeAgenda(a)
	return &resp, nil
}

// ── MarcarStatus ──────────────────────────────────────────────────────────────

func (s *agendaService) MarcarStatus(ctx context.Context, id uuid.UUID, req dto.ActualizarStatusRequest) (*dto.AgendaResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.ErrNoEncontrado
	}
	if a.Tipo != model.TipoPaqueteria {
		return nil, apierror.NuevoRechazo(apierror.CodigoStatusNoAplica, "Solo las agendas de paqueteria manejan status de cotizacion.")
	}
	a.Status = &req.Status
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := dto.DesdeAgenda(a)
	return &resp, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func (s *agendaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.ErrNoEncontrado
	}
	return nil
}

// ── CupoRestante ──────────────────────────────────────────────────────────────

func (s *agendaService) CupoRestante(ctx context.Context, fechaStr string) (int, error) {
	fechaNorm, err := fecha.Normalizar(fechaStr)
	if err != nil {
		return 0, apierror.NuevoRechazo(apierror.CodigoCamposFaltantes, "Fecha invalida.")
	}
	count, err := s.repo.CountDomicilioPorFecha(ctx, fechaNorm)
	if err != nil {
		return 0, err
	}
	restante := model.CupoDomicilio - int(count)
	if restante < 0 {
		restante = 0
	}
	return restante, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func normalizarInstagram(handle string) string {
	handle = strings.TrimSpace(handle)
	if !strings.HasPrefix(handle, "@") {
		return "@" + handle
	}
	return handle
}

func vacio(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// notificar enqueues a best-effort staff notification; a queue failure never
// fails the booking.
func (s *agendaService) notificar(ctx context.Context, a *model.Agenda) {
	if s.dispatcher == nil || s.notifyTo == "" {
		return
	}
	payload := worker.EmailJobPayload{
		ToEmail: s.notifyTo,
		Subject: fmt.Sprintf("Nueva agenda %s para %s", a.Tipo, a.Fecha),
		Body: fmt.Sprintf("Cliente %s (%s, tel %s) agendo una entrega tipo %s para el %s.",
			a.NombreCompleto, a.Instagram, a.Telefono, a.Tipo, a.Fecha),
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Str("agenda_id", a.ID.String()).Msg("no se pudo encolar la notificacion")
	}
}
