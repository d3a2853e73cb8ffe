package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the API routes onto a ServeMux.
func NewRouter(
	catalog *CatalogHandler,
	farmers *FarmerHandler,
	cart *CartHandler,
	chat *ChatHandler,
	logger *zap.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, instrument(pattern, logger, h))
	}

	handle("GET /api/v1/products", catalog.ListProducts)
	handle("GET /api/v1/products/{id}", catalog.GetProduct)
	handle("GET /api/v1/facets", catalog.GetFacets)
	handle("GET /api/v1/farmers", farmers.ListFarmers)
	handle("GET /api/v1/farmers/{id}", farmers.GetFarmer)
	handle("POST /api/v1/cart/quote", cart.QuoteCart)
	handle("POST /api/v1/conversations/{id}/messages", chat.PostMessage)
	handle("GET /api/v1/conversations/{id}/messages", chat.ListMessages)
	handle("GET /api/v1/conversations", chat.ListConversations)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
