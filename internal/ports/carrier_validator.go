package ports

import (
	"context"

	"loadboard-service/internal/domain"
)

// Contract for checking an MC number against the carrier registry.
type CarrierValidator interface {
	// Validate looks up a normalized (digits-only) MC number and reports
	// the outcome as data. Registry failures are folded into a negative
	// CarrierValidation rather than surfaced as errors, so callers can
	// always serialize the result.
	Validate(ctx context.Context, mcNumber string) domain.CarrierValidation
}
