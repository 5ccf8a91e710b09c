package sheets

import (
	"context"

	"hvacpro-backend/models"
)

type UserRepo struct {
	c *Client
}

func NewUserRepo(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	return getAll[models.User](ctx, r.c, SheetUsers)
}

func (r *UserRepo) Update(ctx context.Context, id models.ID, u models.User) (models.User, error) {
	return update(ctx, r.c, SheetUsers, id, u)
}

// Login asks the remote store to check the credentials and returns the
// matched user. Any mismatch comes back as a RequestError; no token or
// session is issued at this layer.
func (r *UserRepo) Login(ctx context.Context, email, password string) (models.User, error) {
	raw, err := r.c.Get(ctx, map[string]string{
		"action":   actionLogin,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](SheetUsers, raw)
}
