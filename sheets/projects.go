package sheets

import (
	"context"

	"hvacpro-backend/models"
)

type ProjectRepo struct {
	c *Client
}

func NewProjectRepo(c *Client) *ProjectRepo {
	return &ProjectRepo{c: c}
}

func (r *ProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	return getAll[models.Project](ctx, r.c, SheetProjects)
}

func (r *ProjectRepo) GetByID(ctx context.Context, id models.ID) (models.Project, error) {
	return getByID[models.Project](ctx, r.c, SheetProjects, id)
}

func (r *ProjectRepo) Create(ctx context.Context, p models.Project) (models.Project, error) {
	return create(ctx, r.c, SheetProjects, p)
}

func (r *ProjectRepo) Update(ctx context.Context, id models.ID, p models.Project) (models.Project, error) {
	return update(ctx, r.c, SheetProjects, id, p)
}

// Delete removes the project row only. Child rows (equipment, work days,
// payments, photos) are left in place; see the orphan note in DESIGN.md.
func (r *ProjectRepo) Delete(ctx context.Context, id models.ID) error {
	return deleteRecord(ctx, r.c, SheetProjects, id)
}
