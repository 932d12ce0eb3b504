package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

// ErrCupoAgotado is returned by CreateDomicilioConCupo when the daily home
// delivery limit is already reached inside the guarded transaction.
var ErrCupoAgotado = errors.New("cupo de domicilio agotado")

// AgendaFilter narrows listings. Zero values mean "no filter".
type AgendaFilter struct {
	Tipo       string
	FechaDesde string
	FechaHasta string
}

type AgendaRepository interface {
	Create(ctx context.Context, a *model.Agenda) error
	// CreateDomicilioConCupo inserts a domicilio booking only if fewer than
	// limite bookings exist for its fecha. The count and the insert run in one
	// transaction with the existing rows locked, so two concurrent requests
	// for the last slot serialize instead of both passing the check.
	CreateDomicilioConCupo(ctx context.Context, a *model.Agenda, limite int) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Agenda, error)
	Update(ctx context.Context, a *model.Agenda) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context, f AgendaFilter) ([]model.Agenda, error)
	CountDomicilioPorFecha(ctx context.Context, fecha string) (int64, error)
	// EntregasVentana returns the cash-reconciliation qualifying set: domicilio
	// bookings marked entregado/efectivo whose CreatedAt falls in
	// (desde, hasta]. Nil bounds are open.
	EntregasVentana(ctx context.Context, desde, hasta *time.Time) ([]model.Agenda, error)
	EntregasVentanaTx(tx *gorm.DB, desde, hasta *time.Time) ([]model.Agenda, error)
}

type agendaRepo struct{ db *gorm.DB }

func NewAgendaRepository(db *gorm.DB) AgendaRepository { return &agendaRepo{db: db} }

func (r *agendaRepo) Create(ctx context.Context, a *model.Agenda) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *agendaRepo) CreateDomicilioConCupo(ctx context.Context, a *model.Agenda, limite int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ocupados []model.Agenda
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tipo = ? AND fecha = ?", model.TipoDomicilio, a.Fecha).
			Find(&ocupados).Error; err != nil {
			return err
		}
		if len(ocupados) >= limite {
			return ErrCupoAgotado
		}
		return tx.Create(a).Error
	})
}

func (r *agendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Agenda, error) {
	var a model.Agenda
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *agendaRepo) Update(ctx context.Context, a *model.Agenda) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *agendaRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Agenda{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *agendaRepo) List(ctx context.Context, f AgendaFilter) ([]model.Agenda, error) {
	q := r.db.WithContext(ctx).Model(&model.Agenda{})
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.FechaDesde != "" {
		q = q.Where("fecha >= ?", f.FechaDesde)
	}
	if f.FechaHasta != "" {
		q = q.Where("fecha <= ?", f.FechaHasta)
	}
	var agendas []model.Agenda
	err := q.Order("fecha ASC, created_at ASC").Find(&agendas).Error
	return agendas, err
}

func (r *agendaRepo) CountDomicilioPorFecha(ctx context.Context, fecha string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Agenda{}).
		Where("tipo = ? AND fecha = ?", model.TipoDomicilio, fecha).
		Count(&count).Error
	return count, err
}

func (r *agendaRepo) EntregasVentana(ctx context.Context, desde, hasta *time.Time) ([]model.Agenda, error) {
	return r.EntregasVentanaTx(r.db.WithContext(ctx), desde, hasta)
}

func (r *agendaRepo) EntregasVentanaTx(tx *gorm.DB, desde, hasta *time.Time) ([]model.Agenda, error) {
	q := tx.Model(&model.Agenda{}).
		Where("tipo = ? AND estado_entrega = ? AND metodo_pago = ?",
			model.TipoDomicilio, model.EntregaEntregado, model.PagoEfectivo)
	if desde != nil {
		q = q.Where("created_at > ?", *desde)
	}
	if hasta != nil {
		q = q.Where("created_at <= ?", *hasta)
	}
	var entregas []model.Agenda
	err := q.Order("created_at ASC").Find(&entregas).Error
	return entregas, err
}
