package sheets

import (
	"context"

	"hvacpro-backend/models"
)

type WorkDayRepo struct {
	c *Client
}

func NewWorkDayRepo(c *Client) *WorkDayRepo {
	return &WorkDayRepo{c: c}
}

func (r *WorkDayRepo) GetAll(ctx context.Context) ([]models.WorkDay, error) {
	return getAll[models.WorkDay](ctx, r.c, SheetWorkDays)
}

func (r *WorkDayRepo) GetByProject(ctx context.Context, projectID models.ID) ([]models.WorkDay, error) {
	return getByProject[models.WorkDay](ctx, r.c, SheetWorkDays, projectID)
}

func (r *WorkDayRepo) Create(ctx context.Context, wd models.WorkDay) (models.WorkDay, error) {
	return create(ctx, r.c, SheetWorkDays, wd)
}

func (r *WorkDayRepo) Delete(ctx context.Context, id models.ID) error {
	return deleteRecord(ctx, r.c, SheetWorkDays, id)
}
