package sheets

import (
	"context"

	"hvacpro-backend/models"
)

type PhotoRepo struct {
	c *Client
}

func NewPhotoRepo(c *Client) *PhotoRepo {
	return &PhotoRepo{c: c}
}

func (r *PhotoRepo) GetAll(ctx context.Context) ([]models.Photo, error) {
	return getAll[models.Photo](ctx, r.c, SheetPhotos)
}

func (r *PhotoRepo) GetByProject(ctx context.Context, projectID models.ID) ([]models.Photo, error) {
	return getByProject[models.Photo](ctx, r.c, SheetPhotos, projectID)
}

func (r *PhotoRepo) Create(ctx context.Context, p models.Photo) (models.Photo, error) {
	return create(ctx, r.c, SheetPhotos, p)
}

func (r *PhotoRepo) Delete(ctx context.Context, id models.ID) error {
	return deleteRecord(ctx, r.c, SheetPhotos, id)
}
