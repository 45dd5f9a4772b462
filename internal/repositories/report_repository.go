package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"forms-backend/internal/entities"
)

type ReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    uint64
}

type ReportRepositoryInterface interface {
	GetContacts(ctx context.Context, filter ReportFilter) ([]entities.ContactSubmission, error)
	GetApplications(ctx context.Context, filter ReportFilter) ([]entities.JobApplication, error)
}

type reportRepository struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func NewReportRepository(pool *pgxpool.Pool, acquireTimeout time.Duration) ReportRepositoryInterface {
	return &reportRepository{pool: pool, acquireTimeout: acquireTimeout}
}

func applyReportFilter(builder sq.SelectBuilder, filter ReportFilter) sq.SelectBuilder {
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.DateTo})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	return builder.OrderBy("created_at DESC")
}

func (r *reportRepository) GetContacts(ctx context.Context, filter ReportFilter) ([]entities.ContactSubmission, error) {
	conn, err := acquireConn(ctx, r.pool, r.acquireTimeout)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	builder := sq.Select("id", "name", "surname", "age", "phone", "email", "province", "locality", "created_at").
		From(contactTable).
		PlaceholderFormat(sq.Dollar)
	query, args, err := applyReportFilter(builder, filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []entities.ContactSubmission
	for rows.Next() {
		var c entities.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Age, &c.Phone, &c.Email, &c.Province, &c.Locality, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *reportRepository) GetApplications(ctx context.Context, filter ReportFilter) ([]entities.JobApplication, error) {
	conn, err := acquireConn(ctx, r.pool, r.acquireTimeout)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	builder := sq.Select("id", "name", "surname", "age", "phone", "email", "province", "locality",
		"national_id", "address", "resume_filename", "created_at").
		From(applicationTable).
		PlaceholderFormat(sq.Dollar)
	query, args, err := applyReportFilter(builder, filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []entities.JobApplication
	for rows.Next() {
		var a entities.JobApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.Surname, &a.Age, &a.Phone, &a.Email, &a.Province, &a.Locality,
			&a.NationalID, &a.Address, &a.ResumeFilename, &a.CreatedAt); err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}
