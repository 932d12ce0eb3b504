package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArojasJ/agendas-entregas/internal/model"
	"github.com/ArojasJ/agendas-entregas/internal/repository"
)

// In-memory repository fakes. CreatedAt is assigned from an advancing clock so
// window tests can reason about ordering; a preset CreatedAt is kept as-is.

type fakeAgendaRepo struct {
	agendas []model.Agenda
	reloj   time.Time
}

func newFakeAgendaRepo() *fakeAgendaRepo {
	return &fakeAgendaRepo{reloj: time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)}
}

func (r *fakeAgendaRepo) tick() time.Time {
	r.reloj = r.reloj.Add(time.Minute)
	return r.reloj
}

func (r *fakeAgendaRepo) Create(_ context.Context, a *model.Agenda) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.tick()
	}
	r.agendas = append(r.agendas, *a)
	return nil
}

func (r *fakeAgendaRepo) CreateDomicilioConCupo(ctx context.Context, a *model.Agenda, limite int) error {
	count, _ := r.CountDomicilioPorFecha(ctx, a.Fecha)
	if int(count) >= limite {
		return repository.ErrCupoAgotado
	}
	return r.Create(ctx, a)
}

func (r *fakeAgendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Agenda, error) {
	for i := range r.agendas {
		if r.agendas[i].ID == id {
			a := r.agendas[i]
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAgendaRepo) Update(_ context.Context, a *model.Agenda) error {
	for i := range r.agendas {
		if r.agendas[i].ID == a.ID {
			r.agendas[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAgendaRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	for i := range r.agendas {
		if r.agendas[i].ID == id {
			r.agendas = append(r.agendas[:i], r.agendas[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeAgendaRepo) List(_ context.Context, f repository.AgendaFilter) ([]model.Agenda, error) {
	var out []model.Agenda
	for _, a := range r.agendas {
		if f.Tipo != "" && a.Tipo != f.Tipo {
			continue
		}
		if f.FechaDesde != "" && a.Fecha < f.FechaDesde {
			continue
		}
		if f.FechaHasta != "" && a.Fecha > f.FechaHasta {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAgendaRepo) CountDomicilioPorFecha(_ context.Context, fecha string) (int64, error) {
	var count int64
	for _, a := range r.agendas {
		if a.Tipo == model.TipoDomicilio && a.Fecha == fecha {
			count++
		}
	}
	return count, nil
}

func (r *fakeAgendaRepo) EntregasVentana(_ context.Context, desde, hasta *time.Time) ([]model.Agenda, error) {
	var out []model.Agenda
	for _, a := range r.agendas {
		if a.Tipo != model.TipoDomicilio ||
			a.EstadoEntrega != model.EntregaEntregado ||
			a.MetodoPago != model.PagoEfectivo {
			continue
		}
		if desde != nil && !a.CreatedAt.After(*desde) {
			continue
		}
		if hasta != nil && a.CreatedAt.After(*hasta) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeAgendaRepo) EntregasVentanaTx(_ *gorm.DB, desde, hasta *time.Time) ([]model.Agenda, error) {
	return r.EntregasVentana(context.Background(), desde, hasta)
}

type fakeBloqueoRepo struct {
	dias []model.DiaBloqueado
}

func (r *fakeBloqueoRepo) Create(_ context.Context, d *model.DiaBloqueado) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	r.dias = append(r.dias, *d)
	return nil
}

func (r *fakeBloqueoRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	for i := range r.dias {
		if r.dias[i].ID == id {
			r.dias = append(r.dias[:i], r.dias[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeBloqueoRepo) List(_ context.Context) ([]model.DiaBloqueado, error) {
	return r.dias, nil
}

func (r *fakeBloqueoRepo) Exists(_ context.Context, fecha, tipo string) (bool, error) {
	for _, d := range r.dias {
		if d.Fecha == fecha && d.Tipo == tipo {
			return true, nil
		}
	}
	return false, nil
}

type fakeCorteRepo struct {
	cortes []model.CorteCaja
	reloj  time.Time
}

func newFakeCorteRepo() *fakeCorteRepo {
	return &fakeCorteRepo{reloj: time.Date(2024, 6, 1, 20, 0, 0, 0, time.Local)}
}

func (r *fakeCorteRepo) UltimoCorte(_ context.Context, ruta string) (*model.CorteCaja, error) {
	var ultimo *model.CorteCaja
	for i := range r.cortes {
		if r.cortes[i].Ruta != ruta {
			continue
		}
		if ultimo == nil || r.cortes[i].CreatedAt.After(ultimo.CreatedAt) {
			c := r.cortes[i]
			ultimo = &c
		}
	}
	return ultimo, nil
}

func (r *fakeCorteRepo) UltimoCorteTx(_ *gorm.DB, ruta string) (*model.CorteCaja, error) {
	return r.UltimoCorte(context.Background(), ruta)
}

func (r *fakeCorteRepo) CreateTx(_ *gorm.DB, c *model.CorteCaja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		r.reloj = r.reloj.Add(time.Hour)
		c.CreatedAt = r.reloj
	}
	r.cortes = append(r.cortes, *c)
	return nil
}

func (r *fakeCorteRepo) List(_ context.Context, ruta string) ([]model.CorteCaja, error) {
	var out []model.CorteCaja
	for _, c := range r.cortes {
		if c.Ruta == ruta {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCorteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CorteCaja, error) {
	for i := range r.cortes {
		if r.cortes[i].ID == id {
			c := r.cortes[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
