package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tickets     *handlers.TicketsHandler
	Parts       *handlers.PartsHandler
	Progress    *handlers.ProgressHandler
	Inventory   *handlers.InventoryHandler
	Outsource   *handlers.OutsourceHandler
	Inspections *handlers.InspectionsHandler
	Billing     *handlers.BillingHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/tickets", cfg.Tickets.CreateTicket)
	app.Get("/tickets/:ticket_number", cfg.Tickets.GetTicket)
	app.Put("/update-status/:ticket_number", cfg.Tickets.UpdateStatus)
	app.Get("/active-tickets", cfg.Tickets.ActiveTickets)
	app.Get("/completed-cars", cfg.Tickets.CompletedCars)
	app.Get("/completed-cars/:ticketNumber", cfg.Tickets.CompletedCar)

	app.Post("/disassembled-parts", cfg.Parts.CreatePart)
	app.Get("/disassembled-parts/:ticket_number", cfg.Parts.ListParts)
	app.Put("/disassembled-parts/:id", cfg.Parts.UpdatePartStatus)
	app.Get("/today-parts", cfg.Parts.TodayParts)

	app.Post("/progress-logs", cfg.Progress.CreateEntry)
	app.Get("/progress-logs/:ticket_number", cfg.Progress.ListEntries)

	app.Post("/tool-assignments", cfg.Inventory.CheckoutTool)
	app.Put("/tool-assignments/:id/return", cfg.Inventory.ReturnTool)
	app.Post("/ordered-parts", cfg.Inventory.OrderPart)
	app.Put("/ordered-parts/:id/arrived", cfg.Inventory.MarkPartArrived)

	app.Post("/outsource-stock", cfg.Outsource.CreateStockItem)
	app.Put("/outsource-stock/:id", cfg.Outsource.UpdateStockStatus)
	app.Post("/outsource-mechanics", cfg.Outsource.CreateMechanic)
	app.Get("/outsource-mechanics/:ticket_number", cfg.Outsource.ListMechanics)
	app.Post("/outsource-mechanics/:id/payments", cfg.Outsource.AddPayment)

	app.Post("/inspections", cfg.Inspections.CreateInspection)
	app.Get("/inspections/:ticket_number", cfg.Inspections.ListInspections)

	app.Post("/bills", cfg.Billing.SaveBill)
	app.Get("/bills/:ticket_number", cfg.Billing.GetBill)
}
