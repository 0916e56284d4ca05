package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"loadboard-service/internal/api/dto"
	"loadboard-service/internal/ports"
)

// LoadHandler exposes read-only load retrieval endpoints.
type LoadHandler struct {
	Repo ports.LoadRepository
	Log  *zap.Logger
}

// Get serves GET /items/{load_id}. Non-integer IDs are a request-shape
// problem (422); integers with no matching load are a 404.
func (h *LoadHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	segment := strings.TrimPrefix(r.URL.Path, "/items/")
	if segment == "" || strings.Contains(segment, "/") {
		writeError(w, r, h.Log, http.StatusNotFound, "not found")
		return
	}

	loadID, err := strconv.Atoi(segment)
	if err != nil || loadID <= 0 {
		writeError(w, r, h.Log, http.StatusUnprocessableEntity, "load_id must be a positive integer")
		return
	}

	load, err := h.Repo.GetByID(r.Context(), loadID)
	if err != nil {
		if errors.Is(err, ports.ErrLoadNotFound) {
			writeError(w, r, h.Log, http.StatusNotFound, "load not found: "+segment)
			return
		}
		h.Log.Error("get load failed", zap.Int("load_id", loadID), zap.Error(err))
		writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LoadResponse{
		LoadID:        load.LoadID,
		Origin:        load.Origin,
		Destination:   load.Destination,
		EquipmentType: load.EquipmentType,
		Rate:          load.Rate,
		Commodity:     load.Commodity,
		PickupDate:    load.PickupDate,
		DeliveryDate:  load.DeliveryDate,
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
