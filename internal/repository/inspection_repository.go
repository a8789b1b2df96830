package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// InspectionRepository encapsulates inspection persistence.
type InspectionRepository interface {
	Create(ctx context.Context, record *domain.InspectionRecord) error
	// ListByTicket returns inspections in ascending chronological order.
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.InspectionRecord, error)
}

type inspectionRepository struct {
	pool *pgxpool.Pool
}

// NewInspectionRepository instantiates repository.
func NewInspectionRepository(pool *pgxpool.Pool) InspectionRepository {
	return &inspectionRepository{pool: pool}
}

func (r *inspectionRepository) Create(ctx context.Context, record *domain.InspectionRecord) error {
	const query = `
        INSERT INTO inspections (ticket_number, main_issue_resolved, reassembly_verified, general_condition, notes, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, inspected_at`
	return r.pool.QueryRow(ctx, query,
		record.TicketNumber,
		record.MainIssueResolved,
		record.ReassemblyVerified,
		record.GeneralCondition,
		record.Notes,
		record.Status,
	).Scan(&record.ID, &record.InspectedAt)
}

func (r *inspectionRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.InspectionRecord, error) {
	const query = `
        SELECT id, ticket_number, main_issue_resolved, reassembly_verified, general_condition, notes, status, inspected_at
        FROM inspections WHERE ticket_number=$1 ORDER BY inspected_at ASC`
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.InspectionRecord{}
	for rows.Next() {
		var record domain.InspectionRecord
		if err := rows.Scan(
			&record.ID,
			&record.TicketNumber,
			&record.MainIssueResolved,
			&record.ReassemblyVerified,
			&record.GeneralCondition,
			&record.Notes,
			&record.Status,
			&record.InspectedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
