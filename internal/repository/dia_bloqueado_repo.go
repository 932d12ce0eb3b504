package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

type DiaBloqueadoRepository interface {
	Create(ctx context.Context, d *model.DiaBloqueado) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context) ([]model.DiaBloqueado, error)
	Exists(ctx context.Context, fecha, tipo string) (bool, error)
}

type diaBloqueadoRepo struct{ db *gorm.DB }

func NewDiaBloqueadoRepository(db *gorm.DB) DiaBloqueadoRepository {
	return &diaBloqueadoRepo{db: db}
}

func (r *diaBloqueadoRepo) Create(ctx context.Context, d *model.DiaBloqueado) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *diaBloqueadoRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.DiaBloqueado{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *diaBloqueadoRepo) List(ctx context.Context) ([]model.DiaBloqueado, error) {
	var dias []model.DiaBloqueado
	err := r.db.WithContext(ctx).Order("fecha ASC").Find(&dias).Error
	return dias, err
}

func (r *diaBloqueadoRepo) Exists(ctx context.Context, fecha, tipo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DiaBloqueado{}).
		Where("fecha = ? AND tipo = ?", fecha, tipo).
		Count(&count).Error
	return count > 0, err
}
