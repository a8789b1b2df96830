package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// PartRepository encapsulates disassembled-part persistence.
type PartRepository interface {
	Create(ctx context.Context, part *domain.DisassembledPart) error
	GetByID(ctx context.Context, id int64) (*domain.DisassembledPart, error)
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.DisassembledPart, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PartStatus) error
	ListLoggedSince(ctx context.Context, since time.Time) ([]domain.DisassembledPart, error)
}

type partRepository struct {
	pool *pgxpool.Pool
}

// NewPartRepository instantiates repository.
func NewPartRepository(pool *pgxpool.Pool) PartRepository {
	return &partRepository{pool: pool}
}

func (r *partRepository) Create(ctx context.Context, part *domain.DisassembledPart) error {
	const query = `
        INSERT INTO disassembled_parts (ticket_number, part_name, condition, status, notes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, logged_at`
	return r.pool.QueryRow(ctx, query,
		part.TicketNumber,
		part.PartName,
		part.Condition,
		part.Status,
		part.Notes,
	).Scan(&part.ID, &part.LoggedAt)
}

func (r *partRepository) GetByID(ctx context.Context, id int64) (*domain.DisassembledPart, error) {
	const query = `
        SELECT id, ticket_number, part_name, condition, status, notes, logged_at
        FROM disassembled_parts WHERE id=$1`
	var part domain.DisassembledPart
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&part.ID,
		&part.TicketNumber,
		&part.PartName,
		&part.Condition,
		&part.Status,
		&part.Notes,
		&part.LoggedAt,
	); err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *partRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.DisassembledPart, error) {
	const query = `
        SELECT id, ticket_number, part_name, condition, status, notes, logged_at
        FROM disassembled_parts WHERE ticket_number=$1 ORDER BY logged_at DESC`
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanParts(rows)
}

func (r *partRepository) UpdateStatus(ctx context.Context, id int64, status domain.PartStatus) error {
	const query = `UPDATE disassembled_parts SET status=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *partRepository) ListLoggedSince(ctx context.Context, since time.Time) ([]domain.DisassembledPart, error) {
	const query = `
        SELECT id, ticket_number, part_name, condition, status, notes, logged_at
        FROM disassembled_parts WHERE logged_at >= $1 ORDER BY ticket_number, logged_at DESC`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanParts(rows)
}

func scanParts(rows pgx.Rows) ([]domain.DisassembledPart, error) {
	result := []domain.DisassembledPart{}
	for rows.Next() {
		var part domain.DisassembledPart
		if err := rows.Scan(
			&part.ID,
			&part.TicketNumber,
			&part.PartName,
			&part.Condition,
			&part.Status,
			&part.Notes,
			&part.LoggedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, part)
	}
	return result, rows.Err()
}
