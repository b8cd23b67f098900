package clientrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.QueryRow(ctx, "SELECT id, name FROM clients WHERE id = $1", id).Scan(&client.ID, &client.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find client", zap.String("client_id", id), zap.Error(err))
		return nil, err
	}
	return &client, nil
}
