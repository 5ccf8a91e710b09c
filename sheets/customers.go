package sheets

import (
	"context"

	"hvacpro-backend/models"
)

// CustomerRepo is the typed verb set over the Customers sheet. It never
// catches gateway errors; they propagate unchanged to the caller.
type CustomerRepo struct {
	c *Client
}

func NewCustomerRepo(c *Client) *CustomerRepo {
	return &CustomerRepo{c: c}
}

func (r *CustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	return getAll[models.Customer](ctx, r.c, SheetCustomers)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id models.ID) (models.Customer, error) {
	return getByID[models.Customer](ctx, r.c, SheetCustomers, id)
}

func (r *CustomerRepo) Create(ctx context.Context, cust models.Customer) (models.Customer, error) {
	return create(ctx, r.c, SheetCustomers, cust)
}

func (r *CustomerRepo) Update(ctx context.Context, id models.ID, cust models.Customer) (models.Customer, error) {
	return update(ctx, r.c, SheetCustomers, id, cust)
}

func (r *CustomerRepo) Delete(ctx context.Context, id models.ID) error {
	return deleteRecord(ctx, r.c, SheetCustomers, id)
}
