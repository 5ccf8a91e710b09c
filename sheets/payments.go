package sheets

import (
	"context"

	"hvacpro-backend/models"
)

type PaymentRepo struct {
	c *Client
}

func NewPaymentRepo(c *Client) *PaymentRepo {
	return &PaymentRepo{c: c}
}

func (r *PaymentRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	return getAll[models.Payment](ctx, r.c, SheetPayments)
}

func (r *PaymentRepo) GetByProject(ctx context.Context, projectID models.ID) ([]models.Payment, error) {
	return getByProject[models.Payment](ctx, r.c, SheetPayments, projectID)
}

func (r *PaymentRepo) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	return create(ctx, r.c, SheetPayments, p)
}

func (r *PaymentRepo) Delete(ctx context.Context, id models.ID) error {
	return deleteRecord(ctx, r.c, SheetPayments, id)
}
