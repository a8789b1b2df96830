package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// ProgressLogRepository encapsulates append-only progress log persistence.
type ProgressLogRepository interface {
	Create(ctx context.Context, entry *domain.ProgressLogEntry) error
	// ListByTicket returns entries newest first (the list endpoint order).
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error)
	// ListTimeline returns entries oldest first (the aggregate timeline order).
	ListTimeline(ctx context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error)
}

type progressLogRepository struct {
	pool *pgxpool.Pool
}

// NewProgressLogRepository instantiates repository.
func NewProgressLogRepository(pool *pgxpool.Pool) ProgressLogRepository {
	return &progressLogRepository{pool: pool}
}

func (r *progressLogRepository) Create(ctx context.Context, entry *domain.ProgressLogEntry) error {
	const query = `
        INSERT INTO progress_logs (ticket_number, log_date, log_time, status_label, description)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.TicketNumber,
		entry.Date,
		entry.Time,
		entry.StatusLabel,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *progressLogRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error) {
	return r.list(ctx, ticketNumber, "DESC")
}

func (r *progressLogRepository) ListTimeline(ctx context.Context, ticketNumber string) ([]domain.ProgressLogEntry, error) {
	return r.list(ctx, ticketNumber, "ASC")
}

func (r *progressLogRepository) list(ctx context.Context, ticketNumber, direction string) ([]domain.ProgressLogEntry, error) {
	query := fmt.Sprintf(`
        SELECT id, ticket_number, log_date, log_time, status_label, description, created_at
        FROM progress_logs WHERE ticket_number=$1 ORDER BY created_at %s`, direction)
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ProgressLogEntry{}
	for rows.Next() {
		var entry domain.ProgressLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.TicketNumber,
			&entry.Date,
			&entry.Time,
			&entry.StatusLabel,
			&entry.Description,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
