package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

type CorteCajaRepository interface {
	// UltimoCorte returns the most recent cut for the route, or nil when no
	// cut exists yet.
	UltimoCorte(ctx context.Context, ruta string) (*model.CorteCaja, error)
	// UltimoCorteTx is the same read with a FOR UPDATE lock, used inside the
	// cut-commit transaction so concurrent cuts serialize on the route.
	UltimoCorteTx(tx *gorm.DB, ruta string) (*model.CorteCaja, error)
	CreateTx(tx *gorm.DB, c *model.CorteCaja) error
	List(ctx context.Context, ruta string) ([]model.CorteCaja, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CorteCaja, error)
}

type corteCajaRepo struct{ db *gorm.DB }

func NewCorteCajaRepository(db *gorm.DB) CorteCajaRepository {
	return &corteCajaRepo{db: db}
}

func (r *corteCajaRepo) UltimoCorte(ctx context.Context, ruta string) (*model.CorteCaja, error) {
	return ultimoCorte(r.db.WithContext(ctx), ruta)
}

func (r *corteCajaRepo) UltimoCorteTx(tx *gorm.DB, ruta string) (*model.CorteCaja, error) {
	return ultimoCorte(tx.Clauses(clause.Locking{Strength: "UPDATE"}), ruta)
}

func ultimoCorte(q *gorm.DB, ruta string) (*model.CorteCaja, error) {
	var c model.CorteCaja
	err := q.Where("ruta = ?", ruta).Order("created_at DESC").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *corteCajaRepo) CreateTx(tx *gorm.DB, c *model.CorteCaja) error {
	return tx.Create(c).Error
}

func (r *corteCajaRepo) List(ctx context.Context, ruta string) ([]model.CorteCaja, error) {
	var cortes []model.CorteCaja
	err := r.db.WithContext(ctx).
		Where("ruta = ?", ruta).Order("created_at DESC").Find(&cortes).Error
	return cortes, err
}

func (r *corteCajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CorteCaja, error) {
	var c model.CorteCaja
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
