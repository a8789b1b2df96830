package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/observability"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/pkg/util"
)

// TicketComposite is the full read model for one ticket. Sub-collections are
// always non-nil; a failed sub-fetch degrades to an empty collection so a
// broken join never blocks ticket display.
type TicketComposite struct {
	Ticket             domain.ServiceTicket
	ToolAssignments    []domain.ToolAssignment
	OutsourceStock     []domain.OutsourceStockItem
	OrderedParts       []domain.OrderedPart
	OutsourceMechanics []domain.OutsourceMechanicRecord
	DisassembledParts  []domain.DisassembledPart
	ProgressTimeline   []domain.ProgressLogEntry
	Inspections        []domain.InspectionRecord
	Billing            *BillProjection
}

// AggregatorService assembles composite ticket views by fanning out one
// concurrent fetch per sub-collection and joining before returning. Batch
// aggregation nests a second fan-out level over the tickets themselves.
type AggregatorService struct {
	tickets   repository.TicketRepository
	parts     repository.PartRepository
	tools     repository.ToolAssignmentRepository
	ordered   repository.OrderedPartRepository
	stock     repository.OutsourceStockRepository
	mechanics repository.OutsourceMechanicRepository
	progress  repository.ProgressLogRepository
	inspect   repository.InspectionRepository
	billing   *BillingService
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// AggregatorDependencies bundles the stores behind the aggregator.
type AggregatorDependencies struct {
	TicketRepo     repository.TicketRepository
	PartRepo       repository.PartRepository
	ToolRepo       repository.ToolAssignmentRepository
	OrderedRepo    repository.OrderedPartRepository
	StockRepo      repository.OutsourceStockRepository
	MechanicRepo   repository.OutsourceMechanicRepository
	ProgressRepo   repository.ProgressLogRepository
	InspectionRepo repository.InspectionRepository
	Billing        *BillingService
	Logger         *zap.Logger
	Metrics        *observability.Metrics
}

// NewAggregatorService constructs the service.
func NewAggregatorService(deps AggregatorDependencies) *AggregatorService {
	return &AggregatorService{
		tickets:   deps.TicketRepo,
		parts:     deps.PartRepo,
		tools:     deps.ToolRepo,
		ordered:   deps.OrderedRepo,
		stock:     deps.StockRepo,
		mechanics: deps.MechanicRepo,
		progress:  deps.ProgressRepo,
		inspect:   deps.InspectionRepo,
		billing:   deps.Billing,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}
}

// AggregateOne assembles the full composite for a single ticket. The anchor
// row is mandatory: a missing ticket is NotFound, a failed ticket fetch is a
// storage error. Sub-fetches degrade individually.
func (s *AggregatorService) AggregateOne(ctx context.Context, ticketNumber string) (*TicketComposite, error) {
	ticket, err := s.tickets.GetByNumber(ctx, ticketNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("ticket", map[string]any{"ticket_number": ticketNumber})
		}
		return nil, util.NewStorageError(err)
	}
	composite := s.assemble(ctx, *ticket, true)
	return &composite, nil
}

// AggregateCompletedOne is the single-ticket completed view. It applies the
// same status filter as the batch endpoint: a ticket outside the
// completed-view statuses is reported as not found.
func (s *AggregatorService) AggregateCompletedOne(ctx context.Context, ticketNumber string) (*TicketComposite, error) {
	ticket, err := s.tickets.GetByNumber(ctx, ticketNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("ticket", map[string]any{"ticket_number": ticketNumber})
		}
		return nil, util.NewStorageError(err)
	}
	if !domain.InCompletedView(ticket.Status) {
		return nil, util.NewNotFound("completed ticket", map[string]any{
			"ticket_number": ticketNumber,
			"status":        string(ticket.Status),
		})
	}
	composite := s.assemble(ctx, *ticket, true)
	return &composite, nil
}

// AggregateActive returns every in-progress ticket with the four workshop
// sub-collections attached (tools, outsource stock, ordered parts, outsource
// mechanics). Output order follows the ticket query order.
func (s *AggregatorService) AggregateActive(ctx context.Context) ([]TicketComposite, error) {
	return s.aggregateByStatuses(ctx, []domain.TicketStatus{domain.StatusInProgress}, false)
}

// AggregateCompleted returns the completed-view tickets with all seven
// sub-collections and the bill projection. A failure to list the anchor rows
// aborts the whole batch.
func (s *AggregatorService) AggregateCompleted(ctx context.Context) ([]TicketComposite, error) {
	return s.aggregateByStatuses(ctx, domain.CompletedViewStatuses, true)
}

func (s *AggregatorService) aggregateByStatuses(ctx context.Context, statuses []domain.TicketStatus, full bool) ([]TicketComposite, error) {
	tickets, err := s.tickets.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, util.NewStorageError(err)
	}

	// Outer fan-out over tickets; results land by index so the response
	// preserves query order regardless of completion order.
	composites := make([]TicketComposite, len(tickets))
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range tickets {
		i := i
		group.Go(func() error {
			composites[i] = s.assemble(groupCtx, tickets[i], full)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, util.NewStorageError(err)
	}
	return composites, nil
}

// assemble runs the per-ticket fan-out and joins before returning. Every
// sub-fetch failure is swallowed into an empty collection and logged for
// operators; the composite itself is all-or-nothing only at the anchor level.
func (s *AggregatorService) assemble(ctx context.Context, ticket domain.ServiceTicket, full bool) TicketComposite {
	composite := TicketComposite{
		Ticket:             ticket,
		ToolAssignments:    []domain.ToolAssignment{},
		OutsourceStock:     []domain.OutsourceStockItem{},
		OrderedParts:       []domain.OrderedPart{},
		OutsourceMechanics: []domain.OutsourceMechanicRecord{},
		DisassembledParts:  []domain.DisassembledPart{},
		ProgressTimeline:   []domain.ProgressLogEntry{},
		Inspections:        []domain.InspectionRecord{},
	}
	number := ticket.TicketNumber

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if tools, err := s.tools.ListByTicket(groupCtx, number); err != nil {
			s.degrade(number, "tool_assignments", err)
		} else if tools != nil {
			composite.ToolAssignments = tools
		}
		return nil
	})
	group.Go(func() error {
		if items, err := s.stock.ListByTicket(groupCtx, number); err != nil {
			s.degrade(number, "outsource_stock", err)
		} else if items != nil {
			composite.OutsourceStock = items
		}
		return nil
	})
	group.Go(func() error {
		if parts, err := s.ordered.ListByTicket(groupCtx, number); err != nil {
			s.degrade(number, "ordered_parts", err)
		} else if parts != nil {
			composite.OrderedParts = parts
		}
		return nil
	})
	group.Go(func() error {
		records, err := s.mechanicsWithLedgers(groupCtx, number)
		if err != nil {
			s.degrade(number, "outsource_mechanics", err)
		} else if records != nil {
			composite.OutsourceMechanics = records
		}
		return nil
	})

	if full {
		group.Go(func() error {
			if parts, err := s.parts.ListByTicket(groupCtx, number); err != nil {
				s.degrade(number, "disassembled_parts", err)
			} else if parts != nil {
				composite.DisassembledParts = parts
			}
			return nil
		})
		group.Go(func() error {
			if logs, err := s.progress.ListTimeline(groupCtx, number); err != nil {
				s.degrade(number, "progress_logs", err)
			} else if logs != nil {
				composite.ProgressTimeline = logs
			}
			return nil
		})
		group.Go(func() error {
			if records, err := s.inspect.ListByTicket(groupCtx, number); err != nil {
				s.degrade(number, "inspections", err)
			} else if records != nil {
				composite.Inspections = records
			}
			return nil
		})
		group.Go(func() error {
			projection, err := s.billing.Project(groupCtx, number)
			if err != nil {
				s.degrade(number, "bill", err)
				projection = BillProjection{HasBill: false, TicketNumber: number}
			}
			composite.Billing = &projection
			return nil
		})
	}

	_ = group.Wait()
	return composite
}

func (s *AggregatorService) mechanicsWithLedgers(ctx context.Context, ticketNumber string) ([]domain.OutsourceMechanicRecord, error) {
	records, err := s.mechanics.ListByTicket(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	for i := range records {
		payments, err := s.mechanics.ListPayments(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Payments = payments
	}
	return records, nil
}

func (s *AggregatorService) degrade(ticketNumber, collection string, err error) {
	s.metrics.RecordDegradation(collection)
	s.logger.Warn("sub-collection fetch degraded to empty",
		zap.String("ticket_number", ticketNumber),
		zap.String("collection", collection),
		zap.Error(err))
}
