package http

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/get_farmer"
	"github.com/light-bringer/farmlink-service/internal/app/catalog/queries/list_farmers"
)

// FarmerHandler exposes the farmer directory endpoints.
type FarmerHandler struct {
	listFarmers *list_farmers.Query
	getFarmer   *get_farmer.Query
	logger      *zap.Logger
}

// NewFarmerHandler creates a new farmer handler.
func NewFarmerHandler(
	listFarmers *list_farmers.Query,
	getFarmer *get_farmer.Query,
	logger *zap.Logger,
) *FarmerHandler {
	return &FarmerHandler{
		listFarmers: listFarmers,
		getFarmer:   getFarmer,
		logger:      logger,
	}
}

type farmerResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Location string    `json:"location"`
	Rating   float64   `json:"rating"`
	Bio      string    `json:"bio"`
	JoinedAt time.Time `json:"joined_at"`
	Image    string    `json:"image"`
}

type listFarmersResponse struct {
	Farmers []farmerResponse `json:"farmers"`
}

func toFarmerResponse(f domain.Farmer) farmerResponse {
	return farmerResponse{
		ID:       f.ID,
		Name:     f.Name,
		Email:    f.Email,
		Location: f.Location,
		Rating:   f.Rating,
		Bio:      f.Bio,
		JoinedAt: f.JoinedAt,
		Image:    f.Image,
	}
}

// ListFarmers handles GET /api/v1/farmers.
func (h *FarmerHandler) ListFarmers(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.listFarmers.Execute(r.Context())
	if err != nil {
		h.logger.Error("list farmers failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list farmers")
		return
	}

	out := make([]farmerResponse, 0, len(farmers))
	for _, farmer := range farmers {
		out = append(out, toFarmerResponse(farmer))
	}

	writeJSON(w, http.StatusOK, listFarmersResponse{Farmers: out})
}

// GetFarmer handles GET /api/v1/farmers/{id}.
func (h *FarmerHandler) GetFarmer(w http.ResponseWriter, r *http.Request) {
	farmerID := r.PathValue("id")

	farmer, err := h.getFarmer.Execute(r.Context(), &get_farmer.Request{FarmerID: farmerID})
	if err != nil {
		if errors.Is(err, domain.ErrFarmerNotFound) {
			writeError(w, http.StatusNotFound, ErrCodeNotFound, "farmer not found")
			return
		}
		h.logger.Error("get farmer failed", zap.String("farmer_id", farmerID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to get farmer")
		return
	}

	writeJSON(w, http.StatusOK, toFarmerResponse(farmer))
}
