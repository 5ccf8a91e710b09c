package sheets

import (
	"context"

	"hvacpro-backend/models"
)

type EquipmentRepo struct {
	c *Client
}

func NewEquipmentRepo(c *Client) *EquipmentRepo {
	return &EquipmentRepo{c: c}
}

func (r *EquipmentRepo) GetAll(ctx context.Context) ([]models.Equipment, error) {
	return getAll[models.Equipment](ctx, r.c, SheetEquipment)
}

func (r *EquipmentRepo) GetByProject(ctx context.Context, projectID models.ID) ([]models.Equipment, error) {
	return getByProject[models.Equipment](ctx, r.c, SheetEquipment, projectID)
}

func (r *EquipmentRepo) Create(ctx context.Context, e models.Equipment) (models.Equipment, error) {
	return create(ctx, r.c, SheetEquipment, e)
}

func (r *EquipmentRepo) Delete(ctx context.Context, id models.ID) error {
	return deleteRecord(ctx, r.c, SheetEquipment, id)
}
