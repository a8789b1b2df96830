package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/garage-service/internal/domain"
)

// ToolAssignmentRepository encapsulates tool checkout persistence. Rows are
// never deleted; returning a tool flips the status.
type ToolAssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.ToolAssignment) error
	ListByTicket(ctx context.Context, ticketNumber string) ([]domain.ToolAssignment, error)
	MarkReturned(ctx context.Context, id int64) error
}

type toolAssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewToolAssignmentRepository instantiates repository.
func NewToolAssignmentRepository(pool *pgxpool.Pool) ToolAssignmentRepository {
	return &toolAssignmentRepository{pool: pool}
}

func (r *toolAssignmentRepository) Create(ctx context.Context, assignment *domain.ToolAssignment) error {
	const query = `
        INSERT INTO tool_assignments (ticket_number, tool_id, tool_name, quantity, assigned_by, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, assigned_at`
	return r.pool.QueryRow(ctx, query,
		assignment.TicketNumber,
		assignment.ToolID,
		assignment.ToolName,
		assignment.Quantity,
		assignment.AssignedBy,
		assignment.Status,
	).Scan(&assignment.ID, &assignment.AssignedAt)
}

func (r *toolAssignmentRepository) ListByTicket(ctx context.Context, ticketNumber string) ([]domain.ToolAssignment, error) {
	const query = `
        SELECT id, ticket_number, tool_id, tool_name, quantity, assigned_by, status, assigned_at, returned_at
        FROM tool_assignments WHERE ticket_number=$1 ORDER BY assigned_at DESC`
	rows, err := r.pool.Query(ctx, query, ticketNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ToolAssignment{}
	for rows.Next() {
		var assignment domain.ToolAssignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.TicketNumber,
			&assignment.ToolID,
			&assignment.ToolName,
			&assignment.Quantity,
			&assignment.AssignedBy,
			&assignment.Status,
			&assignment.AssignedAt,
			&assignment.ReturnedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, assignment)
	}
	return result, rows.Err()
}

func (r *toolAssignmentRepository) MarkReturned(ctx context.Context, id int64) error {
	const query = `UPDATE tool_assignments SET status=$1, returned_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, domain.ToolStatusReturned, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
