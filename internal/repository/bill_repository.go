package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// BillRepository encapsulates bill persistence. A ticket carries zero or one
// bill; GetByTicket reports absence via found=false rather than an error.
type BillRepository interface {
	Upsert(ctx context.Context, bill *domain.Bill) error
	GetByTicket(ctx context.Context, ticketNumber string) (*domain.Bill, bool, error)
}

type billRepository struct {
	pool *pgxpool.Pool
}

// NewBillRepository instantiates repository.
func NewBillRepository(pool *pgxpool.Pool) BillRepository {
	return &billRepository{pool: pool}
}

func (r *billRepository) Upsert(ctx context.Context, bill *domain.Bill) error {
	const query = `
        INSERT INTO bills (ticket_number, labor_cost, parts_cost, outsourced_parts_cost, outsourced_labor_cost,
            subtotal, tax_rate, tax_amount, discount, final_total, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        ON CONFLICT (ticket_number) DO UPDATE SET
            labor_cost=EXCLUDED.labor_cost,
            parts_cost=EXCLUDED.parts_cost,
            outsourced_parts_cost=EXCLUDED.outsourced_parts_cost,
            outsourced_labor_cost=EXCLUDED.outsourced_labor_cost,
            subtotal=EXCLUDED.subtotal,
            tax_rate=EXCLUDED.tax_rate,
            tax_amount=EXCLUDED.tax_amount,
            discount=EXCLUDED.discount,
            final_total=EXCLUDED.final_total,
            status=EXCLUDED.status,
            updated_at=NOW()
        RETURNING id, created_at, updated_at`
	if err := r.pool.QueryRow(ctx, query,
		bill.TicketNumber,
		bill.LaborCost,
		bill.PartsCost,
		bill.OutsourcedPartsCost,
		bill.OutsourcedLaborCost,
		bill.Subtotal,
		bill.TaxRate,
		bill.TaxAmount,
		bill.Discount,
		bill.FinalTotal,
		bill.Status,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt); err != nil {
		return err
	}
	return r.replaceLineItems(ctx, bill)
}

func (r *billRepository) replaceLineItems(ctx context.Context, bill *domain.Bill) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM bill_line_items WHERE bill_id=$1`, bill.ID); err != nil {
		return err
	}
	const query = `
        INSERT INTO bill_line_items (bill_id, description, size, quantity, unit_price, amount)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	for i := range bill.LineItems {
		item := &bill.LineItems[i]
		item.BillID = bill.ID
		if err := r.pool.QueryRow(ctx, query,
			item.BillID,
			item.Description,
			item.Size,
			item.Quantity,
			item.UnitPrice,
			item.Amount,
		).Scan(&item.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *billRepository) GetByTicket(ctx context.Context, ticketNumber string) (*domain.Bill, bool, error) {
	const query = `
        SELECT id, ticket_number, labor_cost, parts_cost, outsourced_parts_cost, outsourced_labor_cost,
               subtotal, tax_rate, tax_amount, discount, final_total, status, created_at, updated_at
        FROM bills WHERE ticket_number=$1`
	var bill domain.Bill
	err := r.pool.QueryRow(ctx, query, ticketNumber).Scan(
		&bill.ID,
		&bill.TicketNumber,
		&bill.LaborCost,
		&bill.PartsCost,
		&bill.OutsourcedPartsCost,
		&bill.OutsourcedLaborCost,
		&bill.Subtotal,
		&bill.TaxRate,
		&bill.TaxAmount,
		&bill.Discount,
		&bill.FinalTotal,
		&bill.Status,
		&bill.CreatedAt,
		&bill.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	items, err := r.listLineItems(ctx, bill.ID)
	if err != nil {
		return nil, false, err
	}
	bill.LineItems = items
	return &bill, true, nil
}

func (r *billRepository) listLineItems(ctx context.Context, billID int64) ([]domain.BillLineItem, error) {
	const query = `
        SELECT id, bill_id, description, size, quantity, unit_price, amount
        FROM bill_line_items WHERE bill_id=$1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.BillLineItem{}
	for rows.Next() {
		var item domain.BillLineItem
		if err := rows.Scan(
			&item.ID,
			&item.BillID,
			&item.Description,
			&item.Size,
			&item.Quantity,
			&item.UnitPrice,
			&item.Amount,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
