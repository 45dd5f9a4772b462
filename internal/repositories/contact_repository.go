package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"forms-backend/internal/entities"
)

const contactTable = "form_contacts"

type ContactRepositoryInterface interface {
	Insert(ctx context.Context, c *entities.ContactSubmission) (uint64, error)
}

type contactRepository struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func NewContactRepository(pool *pgxpool.Pool, acquireTimeout time.Duration) ContactRepositoryInterface {
	return &contactRepository{pool: pool, acquireTimeout: acquireTimeout}
}

func (r *contactRepository) Insert(ctx context.Context, c *entities.ContactSubmission) (uint64, error) {
	conn, err := acquireConn(ctx, r.pool, r.acquireTimeout)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	query, args, err := sq.Insert(contactTable).
		Columns("name", "surname", "age", "phone", "email", "province", "locality").
		Values(c.Name, c.Surname, c.Age, c.Phone, c.Email, c.Province, c.Locality).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
