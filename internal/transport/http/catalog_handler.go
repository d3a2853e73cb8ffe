package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/schema"
	"go.uber.org/zap"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/get_facets"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/farmlink-service/internal/pkg/metrics"
)

// CatalogHandler exposes the catalog read endpoints.
type CatalogHandler struct {
	listProducts *list_products.Query
	getProduct   *get_product.Query
	getFacets    *get_facets.Query
	decoder      *schema.Decoder
	logger       *zap.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	getFacets *get_facets.Query,
	logger *zap.Logger,
) *CatalogHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &CatalogHandler{
		listProducts: listProducts,
		getProduct:   getProduct,
		getFacets:    getFacets,
		decoder:      decoder,
		logger:       logger,
	}
}

type listProductsParams struct {
	Categories []string `schema:"category"`
	Locations  []string `schema:"location"`
	PriceMin   *float64 `schema:"price_min"`
	PriceMax   *float64 `schema:"price_max"`
	MinRating  float64  `schema:"min_rating"`
	Search     string   `schema:"search"`
}

type farmerRefResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
}

type productResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Unit        string            `json:"unit"`
	Quantity    int64             `json:"quantity"`
	Image       string            `json:"image"`
	CreatedAt   time.Time         `json:"created_at"`
	Farmer      farmerRefResponse `json:"farmer"`
}

type facetsResponse struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	MaxPrice   float64  `json:"max_price"`
}

type listProductsResponse struct {
	Products   []productResponse `json:"products"`
	Facets     facetsResponse    `json:"facets"`
	TotalCount int               `json:"total_count"`
}

func toProductResponse(p domain.EnrichedProduct) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		Farmer: farmerRefResponse{
			ID:       p.Farmer.ID,
			Name:     p.Farmer.Name,
			Location: p.Farmer.Location,
			Rating:   p.Farmer.Rating,
		},
	}
}

func toFacetsResponse(f domain.Facets) facetsResponse {
	return facetsResponse{
		Categories: f.Categories,
		Locations:  f.Locations,
		MaxPrice:   f.MaxPrice,
	}
}

// ListProducts handles GET /api/v1/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var params listProductsParams
	if err := h.decoder.Decode(&params, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid filter parameters")
		return
	}

	result, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		Categories: params.Categories,
		Locations:  params.Locations,
		PriceMin:   params.PriceMin,
		PriceMax:   params.PriceMax,
		MinRating:  params.MinRating,
		Search:     params.Search,
	})
	if err != nil {
		h.logger.Error("list products failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list products")
		return
	}

	metrics.FilterResultSize.Observe(float64(len(result.Products)))

	products := make([]productResponse, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, listProductsResponse{
		Products:   products,
		Facets:     toFacetsResponse(result.Facets),
		TotalCount: len(products),
	})
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	product, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: productID})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, ErrCodeNotFound, "product not found")
			return
		}
		h.logger.Error("get product failed", zap.String("product_id", productID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// GetFacets handles GET /api/v1/facets.
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.getFacets.Execute(r.Context())
	if err != nil {
		h.logger.Error("get facets failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to get facets")
		return
	}

	writeJSON(w, http.StatusOK, toFacetsResponse(facets))
}
