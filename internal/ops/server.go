// Package ops exposes a read-only HTTP surface for staff tooling:
// liveness and ledger aggregates. No mutating endpoint exists here.
package ops

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Jaxa123/jaxa-tg/internal/service"
	"github.com/Jaxa123/jaxa-tg/internal/store"
)

type StatsDTO struct {
	TotalOrders  int            `json:"total_orders"`
	TotalRevenue string         `json:"total_revenue"`
	AverageOrder string         `json:"average_order"`
	PerCategory  map[string]int `json:"per_category_quantity"`
}

type OrderItemDTO struct {
	ItemID    int64  `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type OrderDTO struct {
	ID        string         `json:"id"`
	Number    int            `json:"number"`
	Username  string         `json:"username"`
	Total     string         `json:"total"`
	Payment   string         `json:"payment"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"created_at"`
	Items     []OrderItemDTO `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves the ops endpoints over the order ledger.
type Handler struct {
	ledger store.OrderLedger
}

// NewRouter builds the chi router with all ops routes registered.
func NewRouter(ledger store.OrderLedger) http.Handler {
	h := &Handler{ledger: ledger}

	r := chi.NewRouter()
	r.Get("/healthz", h.Health)
	r.Get("/api/v1/stats", h.Stats)
	r.Get("/api/v1/orders/recent", h.RecentOrders)
	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/v1/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := service.ComputeStats(h.ledger)
	respondJSON(w, http.StatusOK, StatsDTO{
		TotalOrders:  stats.TotalOrders,
		TotalRevenue: stats.TotalRevenue.StringFixed(2),
		AverageOrder: stats.AverageOrder.StringFixed(2),
		PerCategory:  stats.PerCategoryQuantity,
	})
}

// GET /api/v1/orders/recent?n=5
func (h *Handler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	n := 5
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	orders := h.ledger.Recent(n)
	dtos := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		items := make([]OrderItemDTO, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, OrderItemDTO{
				ItemID:    item.ItemID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice.StringFixed(2),
				Subtotal:  item.Subtotal.StringFixed(2),
			})
		}
		dtos = append(dtos, OrderDTO{
			ID:        order.ID,
			Number:    order.Number,
			Username:  order.Username,
			Total:     order.Total.StringFixed(2),
			Payment:   string(order.Payment),
			Status:    order.Status.String(),
			CreatedAt: order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Items:     items,
		})
	}
	respondJSON(w, http.StatusOK, dtos)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
