package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"forms-backend/internal/entities"
)

const applicationTable = "job_applications"

type ApplicationRepositoryInterface interface {
	Insert(ctx context.Context, a *entities.JobApplication) (uint64, error)
}

type applicationRepository struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func NewApplicationRepository(pool *pgxpool.Pool, acquireTimeout time.Duration) ApplicationRepositoryInterface {
	return &applicationRepository{pool: pool, acquireTimeout: acquireTimeout}
}

func (r *applicationRepository) Insert(ctx context.Context, a *entities.JobApplication) (uint64, error) {
	conn, err := acquireConn(ctx, r.pool, r.acquireTimeout)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	query, args, err := sq.Insert(applicationTable).
		Columns("name", "surname", "age", "phone", "email", "province", "locality",
			"national_id", "address", "resume_filename").
		Values(a.Name, a.Surname, a.Age, a.Phone, a.Email, a.Province, a.Locality,
			a.NationalID, a.Address, a.ResumeFilename).
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
