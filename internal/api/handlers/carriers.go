package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"loadboard-service/internal/api/dto"
	"loadboard-service/internal/domain"
	"loadboard-service/internal/ports"
)

// CarrierHandler exposes MC number validation.
type CarrierHandler struct {
	Validator ports.CarrierValidator
	Log       *zap.Logger
}

// Validate serves /carriers/validate. The MC number arrives as a query
// parameter on GET or a JSON body on POST. Validity is communicated in
// the response body, not the status code: a carrier failing the check is
// a normal outcome of running it, so both outcomes are 200.
func (h *CarrierHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var raw string

	switch r.Method {
	case http.MethodGet:
		raw = r.URL.Query().Get("mc_number")
	case http.MethodPost:
		var req dto.ValidateCarrierRequest

		dec := json.NewDecoder(r.Body)
		defer r.Body.Close()
		dec.DisallowUnknownFields()

		if err := dec.Decode(&req); err != nil {
			writeError(w, r, h.Log, http.StatusBadRequest, "invalid json body")
			return
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(w, r, h.Log, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}

		raw = req.MCNumber
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		writeError(w, r, h.Log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if strings.TrimSpace(raw) == "" {
		writeError(w, r, h.Log, http.StatusBadRequest, "mc_number is required")
		return
	}

	mcNumber, err := domain.NormalizeMCNumber(raw)
	if err != nil {
		writeError(w, r, h.Log, http.StatusUnprocessableEntity, "invalid MC number format")
		return
	}

	result := h.Validator.Validate(r.Context(), mcNumber)

	res := dto.CarrierValidationResponse{
		MCNumber:        result.MCNumber,
		IsValid:         result.IsValid,
		Detail:          result.Detail,
		LegalName:       result.LegalName,
		DBAName:         result.DBAName,
		DOTNumber:       result.DOTNumber,
		OperatingStatus: result.OperatingStatus,
		SafetyRating:    result.SafetyRating,
		PhysicalState:   result.PhysicalState,
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
