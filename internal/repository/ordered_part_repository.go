package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// OrderedPartRepository encapsulates inventory-ordered part persistence.
type OrderedPartRepository interface {
	Create(ctx context.Context, part *domain.OrderedPart) error
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.OrderedPart, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderedPartStatus) error
}

type orderedPartRepository struct {
	pool *pgxpool.Pool
}

// NewOrderedPartRepository instantiates repository.
func NewOrderedPartRepository(pool *pgxpool.Pool) OrderedPartRepository {
	return &orderedPartRepository{pool: pool}
}

func (r *orderedPartRepository) Create(ctx context.Context, part *domain.OrderedPart) error {
	const query = `
        INSERT INTO ordered_parts (ticket_number, name, sku, price, quantity, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, ordered_at`
	return r.pool.QueryRow(ctx, query,
		part.TicketNumber,
		part.Name,
		part.SKU,
		part.Price,
		part.Quantity,
		part.Status,
	).Scan(&part.ID, &part.OrderedAt)
}

func (r *orderedPartRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.OrderedPart, error) {
	const query = `
        SELECT id, ticket_number, name, sku, price, quantity, status, ordered_at, arrived_at
        FROM ordered_parts WHERE ticket_number=$1 ORDER BY ordered_at DESC`
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.OrderedPart{}
	for rows.Next() {
		var part domain.OrderedPart
		if err := rows.Scan(
			&part.ID,
			&part.TicketNumber,
			&part.Name,
			&part.SKU,
			&part.Price,
			&part.Quantity,
			&part.Status,
			&part.OrderedAt,
			&part.ArrivedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, part)
	}
	return result, rows.Err()
}

func (r *orderedPartRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderedPartStatus) error {
	arrivedAt := "arrived_at"
	if status == domain.OrderedPartStatusArrived {
		arrivedAt = "NOW()"
	}
	query := `UPDATE ordered_parts SET status=$1, arrived_at=` + arrivedAt + ` WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
