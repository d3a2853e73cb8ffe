package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	cart "github.com/light-bringer/farmlink-service/internal/app/cart/domain"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/quote_cart"
)

// CartHandler exposes the cart quoting endpoint.
type CartHandler struct {
	quoteCart *quote_cart.Query
	logger    *zap.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(quoteCart *quote_cart.Query, logger *zap.Logger) *CartHandler {
	return &CartHandler{quoteCart: quoteCart, logger: logger}
}

type quoteRequest struct {
	Items []quoteRequestItem `json:"items"`
}

type quoteRequestItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type quoteLineResponse struct {
	Product   productResponse `json:"product"`
	Quantity  int64           `json:"quantity"`
	UnitPrice string          `json:"unit_price"`
	LineTotal string          `json:"line_total"`
}

type quoteResponse struct {
	Lines []quoteLineResponse `json:"lines"`
	Total string              `json:"total"`
}

// QuoteCart handles POST /api/v1/cart/quote.
func (h *CartHandler) QuoteCart(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	items := make([]cart.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, cart.LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	quote, err := h.quoteCart.Execute(r.Context(), &quote_cart.Request{Items: items})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrUnknownProduct):
			writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
		case errors.Is(err, cart.ErrEmptyQuote),
			errors.Is(err, cart.ErrInvalidQuantity),
			errors.Is(err, cart.ErrInsufficientStock):
			writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			h.logger.Error("cart quote failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to quote cart")
		}
		return
	}

	lines := make([]quoteLineResponse, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, quoteLineResponse{
			Product:   toProductResponse(line.Product),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			LineTotal: line.LineTotal.String(),
		})
	}

	writeJSON(w, http.StatusOK, quoteResponse{Lines: lines, Total: quote.Total.String()})
}
