package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// OutsourceMechanicRepository encapsulates outsourced-mechanic persistence.
// The payment ledger is append-only.
type OutsourceMechanicRepository interface {
	Create(ctx context.Context, record *domain.OutsourceMechanicRecord) error
	GetByID(ctx context.Context, id int64) (*domain.OutsourceMechanicRecord, error)
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.OutsourceMechanicRecord, error)
	AddPayment(ctx context.Context, payment *domain.MechanicPayment) error
	ListPayments(ctx context.Context, mechanicID int64) ([]domain.MechanicPayment, error)
}

type outsourceMechanicRepository struct {
	pool *pgxpool.Pool
}

// NewOutsourceMechanicRepository instantiates repository.
func NewOutsourceMechanicRepository(pool *pgxpool.Pool) OutsourceMechanicRepository {
	return &outsourceMechanicRepository{pool: pool}
}

func (r *outsourceMechanicRepository) Create(ctx context.Context, record *domain.OutsourceMechanicRecord) error {
	const query = `
        INSERT INTO outsource_mechanics (ticket_number, mechanic_name, phone, agreed_payment, payment_method, work_done, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		record.TicketNumber,
		record.MechanicName,
		record.Phone,
		record.AgreedPayment,
		record.PaymentMethod,
		record.WorkDone,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *outsourceMechanicRepository) GetByID(ctx context.Context, id int64) (*domain.OutsourceMechanicRecord, error) {
	const query = `
        SELECT id, ticket_number, mechanic_name, phone, agreed_payment, payment_method, work_done, notes, created_at
        FROM outsource_mechanics WHERE id=$1`
	var record domain.OutsourceMechanicRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.TicketNumber,
		&record.MechanicName,
		&record.Phone,
		&record.AgreedPayment,
		&record.PaymentMethod,
		&record.WorkDone,
		&record.Notes,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *outsourceMechanicRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.OutsourceMechanicRecord, error) {
	const query = `
        SELECT id, ticket_number, mechanic_name, phone, agreed_payment, payment_method, work_done, notes, created_at
        FROM outsource_mechanics WHERE ticket_number=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.OutsourceMechanicRecord{}
	for rows.Next() {
		var record domain.OutsourceMechanicRecord
		if err := rows.Scan(
			&record.ID,
			&record.TicketNumber,
			&record.MechanicName,
			&record.Phone,
			&record.AgreedPayment,
			&record.PaymentMethod,
			&record.WorkDone,
			&record.Notes,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *outsourceMechanicRepository) AddPayment(ctx context.Context, payment *domain.MechanicPayment) error {
	const query = `
        INSERT INTO mechanic_payments (mechanic_id, amount, method, notes)
        VALUES ($1,$2,$3,$4)
        RETURNING id, paid_at`
	return r.pool.QueryRow(ctx, query,
		payment.MechanicID,
		payment.Amount,
		payment.Method,
		payment.Notes,
	).Scan(&payment.ID, &payment.PaidAt)
}

func (r *outsourceMechanicRepository) ListPayments(ctx context.Context, mechanicID int64) ([]domain.MechanicPayment, error) {
	const query = `
        SELECT id, mechanic_id, amount, method, paid_at, notes
        FROM mechanic_payments WHERE mechanic_id=$1 ORDER BY paid_at ASC`
	rows, err := r.pool.Query(ctx, query, mechanicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.MechanicPayment{}
	for rows.Next() {
		var payment domain.MechanicPayment
		if err := rows.Scan(
			&payment.ID,
			&payment.MechanicID,
			&payment.Amount,
			&payment.Method,
			&payment.PaidAt,
			&payment.Notes,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
