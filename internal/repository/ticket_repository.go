package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// TicketRepository encapsulates service-ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.ServiceTicket) error
	GetByNumber(ctx context.Context, ticketNumber string) (*domain.ServiceTicket, error)
	UpdateStatus(ctx context.Context, ticketNumber string, status domain.TicketStatus) (*domain.ServiceTicket, error)
	SetEstimatedCompletion(ctx context.Context, ticketNumber string, estimate time.Time) error
	ListByStatuses(ctx context.Context, statuses []domain.TicketStatus) ([]domain.ServiceTicket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, ticket_number, customer_type, customer_id, vehicle_id, title, description,
       priority, type, urgency_level, status, mechanic_id, inspector_id,
       estimated_completion, completed_at, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.ServiceTicket) error {
	const query = `
        INSERT INTO service_tickets (ticket_number, customer_type, customer_id, vehicle_id, title, description,
            priority, type, urgency_level, status, mechanic_id, inspector_id, estimated_completion)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.TicketNumber,
		ticket.CustomerType,
		ticket.CustomerID,
		ticket.VehicleID,
		ticket.Title,
		ticket.Description,
		ticket.Priority,
		ticket.Type,
		ticket.UrgencyLevel,
		ticket.Status,
		ticket.MechanicID,
		ticket.InspectorID,
		ticket.EstimatedCompletion,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByNumber(ctx context.Context, ticketNumber string) (*domain.ServiceTicket, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_tickets WHERE ticket_number=$1`, ticketColumns)
	var ticket domain.ServiceTicket
	if err := scanTicket(r.pool.QueryRow(ctx, query, ticketNumber), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketNumber string, status domain.TicketStatus) (*domain.ServiceTicket, error) {
	completedAt := "completed_at"
	if status == domain.StatusCompleted {
		completedAt = "NOW()"
	}
	query := fmt.Sprintf(`
        UPDATE service_tickets SET status=$1, completed_at=%s, updated_at=NOW()
        WHERE ticket_number=$2
        RETURNING %s`, completedAt, ticketColumns)
	var ticket domain.ServiceTicket
	if err := scanTicket(r.pool.QueryRow(ctx, query, status, ticketNumber), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) SetEstimatedCompletion(ctx context.Context, ticketNumber string, estimate time.Time) error {
	const query = `UPDATE service_tickets SET estimated_completion=$1, updated_at=NOW() WHERE ticket_number=$2`
	cmd, err := r.pool.Exec(ctx, query, estimate, ticketNumber)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) ListByStatuses(ctx context.Context, statuses []domain.TicketStatus) ([]domain.ServiceTicket, error) {
	if len(statuses) == 0 {
		return []domain.ServiceTicket{}, nil
	}
	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, status := range statuses {
		args[i] = status
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`SELECT %s FROM service_tickets WHERE status IN (%s) ORDER BY updated_at DESC`,
		ticketColumns, strings.Join(placeholders, ","))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ServiceTicket{}
	for rows.Next() {
		var ticket domain.ServiceTicket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func scanTicket(row pgx.Row, ticket *domain.ServiceTicket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.CustomerType,
		&ticket.CustomerID,
		&ticket.VehicleID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Priority,
		&ticket.Type,
		&ticket.UrgencyLevel,
		&ticket.Status,
		&ticket.MechanicID,
		&ticket.InspectorID,
		&ticket.EstimatedCompletion,
		&ticket.CompletedAt,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}
