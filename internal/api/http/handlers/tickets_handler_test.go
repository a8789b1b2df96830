package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	httptransport "github.com/spec-kit/garage-service/internal/api/http"
	"github.com/spec-kit/garage-service/internal/api/http/handlers"
	"github.com/spec-kit/garage-service/internal/config"
	"github.com/spec-kit/garage-service/internal/domain"
	"github.com/spec-kit/garage-service/internal/observability"
	"github.com/spec-kit/garage-service/internal/service"
)

type memoryTicketRepo struct {
	tickets map[string]*domain.ServiceTicket
}

func (r *memoryTicketRepo) Create(_ context.Context, ticket *domain.ServiceTicket) error {
	ticket.ID = "id-" + ticket.TicketNumber
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	r.tickets[ticket.TicketNumber] = ticket
	return nil
}

func (r *memoryTicketRepo) GetByNumber(_ context.Context, ticketNumber string) (*domain.ServiceTicket, error) {
	ticket, ok := r.tickets[ticketNumber]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (r *memoryTicketRepo) UpdateStatus(_ context.Context, ticketNumber string, status domain.TicketStatus) (*domain.ServiceTicket, error) {
	ticket, ok := r.tickets[ticketNumber]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = status
	clone := *ticket
	return &clone, nil
}

func (r *memoryTicketRepo) SetEstimatedCompletion(_ context.Context, ticketNumber string, estimate time.Time) error {
	ticket, ok := r.tickets[ticketNumber]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.EstimatedCompletion = &estimate
	return nil
}

func (r *memoryTicketRepo) ListByStatuses(context.Context, []domain.TicketStatus) ([]domain.ServiceTicket, error) {
	return nil, nil
}

func newTestApp(repo *memoryTicketRepo, logger *zap.Logger) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)

	ticketService := service.NewTicketService(repo, config.WorkflowConfig{})
	handler := handlers.NewTicketsHandler(ticketService, nil)
	app.Post("/tickets", handler.CreateTicket)
	app.Put("/update-status/:ticket_number", handler.UpdateStatus)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateTicketEndpoint(t *testing.T) {
	repo := &memoryTicketRepo{tickets: map[string]*domain.ServiceTicket{}}
	app := newTestApp(repo, zap.NewNop())

	resp := doJSON(t, app, http.MethodPost, "/tickets",
		`{"customer_id":"cust-1","vehicle_id":"veh-1","title":"brake noise"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Data struct {
			TicketNumber string `json:"ticket_number"`
			Status       string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pending", body.Data.Status)
	assert.True(t, strings.HasPrefix(body.Data.TicketNumber, "SVT-"))
}

func TestCreateTicketEndpointValidation(t *testing.T) {
	app := newTestApp(&memoryTicketRepo{tickets: map[string]*domain.ServiceTicket{}}, zap.NewNop())

	resp := doJSON(t, app, http.MethodPost, "/tickets", `{"title":"no ids"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := &memoryTicketRepo{tickets: map[string]*domain.ServiceTicket{
		"SVT-00000001": {TicketNumber: "SVT-00000001", Status: domain.StatusPending},
	}}
	app := newTestApp(repo, zap.NewNop())

	resp := doJSON(t, app, http.MethodPut, "/update-status/SVT-00000001", `{"status":"in progress"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "in progress", body.Data.Status)
}

func TestUpdateStatusEndpointRejectsBlockedStatus(t *testing.T) {
	repo := &memoryTicketRepo{tickets: map[string]*domain.ServiceTicket{
		"SVT-00000001": {TicketNumber: "SVT-00000001", Status: domain.StatusPending},
	}}
	app := newTestApp(repo, zap.NewNop())

	resp := doJSON(t, app, http.MethodPut, "/update-status/SVT-00000001", `{"status":"awaiting bill"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateStatusEndpointUnknownTicket(t *testing.T) {
	app := newTestApp(&memoryTicketRepo{tickets: map[string]*domain.ServiceTicket{}}, zap.NewNop())

	resp := doJSON(t, app, http.MethodPut, "/update-status/SVT-MISSING1", `{"status":"completed"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestLogRecordsMappedErrorStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := newTestApp(&memoryTicketRepo{tickets: map[string]*domain.ServiceTicket{}}, zap.New(core))

	resp := doJSON(t, app, http.MethodPost, "/tickets", `{"title":"no ids"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, fiber.StatusBadRequest, entries[0].ContextMap()["status"])
}
