package fmcsa

import (
	"context"

	"loadboard-service/internal/domain"
)

// MockValidator returns scripted results keyed by normalized MC number.
// Unknown numbers come back as not found, matching the registry's shape.
type MockValidator struct {
	Results map[string]domain.CarrierValidation
}

func NewMockValidator(results map[string]domain.CarrierValidation) *MockValidator {
	return &MockValidator{Results: results}
}

func (m *MockValidator) Validate(ctx context.Context, mcNumber string) domain.CarrierValidation {
	if r, ok := m.Results[mcNumber]; ok {
		return r
	}
	return domain.CarrierValidation{
		MCNumber: "MC" + mcNumber,
		Detail:   "carrier not found",
	}
}
