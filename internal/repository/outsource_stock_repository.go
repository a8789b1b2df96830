package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// OutsourceStockRepository encapsulates third-party stock persistence.
type OutsourceStockRepository interface {
	Create(ctx context.Context, item *domain.OutsourceStockItem) error
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.OutsourceStockItem, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StockStatus) error
}

type outsourceStockRepository struct {
	pool *pgxpool.Pool
}

// NewOutsourceStockRepository instantiates repository.
func NewOutsourceStockRepository(pool *pgxpool.Pool) OutsourceStockRepository {
	return &outsourceStockRepository{pool: pool}
}

func (r *outsourceStockRepository) Create(ctx context.Context, item *domain.OutsourceStockItem) error {
	const query = `
        INSERT INTO outsource_stock_items (ticket_number, name, category, sku, price, quantity, source_shop, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, requested_at`
	return r.pool.QueryRow(ctx, query,
		item.TicketNumber,
		item.Name,
		item.Category,
		item.SKU,
		item.Price,
		item.Quantity,
		item.SourceShop,
		item.Status,
		item.Notes,
	).Scan(&item.ID, &item.RequestedAt)
}

func (r *outsourceStockRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.OutsourceStockItem, error) {
	const query = `
        SELECT id, ticket_number, name, category, sku, price, quantity, source_shop, status, notes, requested_at, received_at
        FROM outsource_stock_items WHERE ticket_number=$1 ORDER BY requested_at DESC`
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.OutsourceStockItem{}
	for rows.Next() {
		var item domain.OutsourceStockItem
		if err := rows.Scan(
			&item.ID,
			&item.TicketNumber,
			&item.Name,
			&item.Category,
			&item.SKU,
			&item.Price,
			&item.Quantity,
			&item.SourceShop,
			&item.Status,
			&item.Notes,
			&item.RequestedAt,
			&item.ReceivedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *outsourceStockRepository) UpdateStatus(ctx context.Context, id int64, status domain.StockStatus) error {
	receivedAt := "received_at"
	if status == domain.StockStatusReceived {
		receivedAt = "NOW()"
	}
	query := `UPDATE outsource_stock_items SET status=$1, received_at=` + receivedAt + ` WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
