package fmcsa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"loadboard-service/internal/domain"
	"loadboard-service/internal/platform/obs"
)

const defaultBaseURL = "https://mobile.fmcsa.dot.gov"

// requestTimeout bounds the registry call. The FMCSA endpoint has no SLA;
// expiry is reported as the unreachable case rather than left to hang.
const requestTimeout = 5 * time.Second

// Validator implements CarrierValidator against the FMCSA QCMobile API.
//
// Registry failures never escape as errors: an unreachable or misbehaving
// registry produces a negative CarrierValidation whose Detail names the
// failure, so the API layer can keep its always-200 contract by plain
// value mapping. No retry and no caching of prior results.
//
// The validator is safe for concurrent use.
type Validator struct {
	session *http.Client
	apiKey  string
	baseURL string
	log     *zap.Logger
}

func NewValidator(apiKey, baseURL string, log *zap.Logger) (*Validator, error) {
	if apiKey == "" {
		return nil, errors.New("FMCSA api key is empty")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Validator{
		session: &http.Client{Timeout: requestTimeout},
		apiKey:  apiKey,
		baseURL: baseURL,
		log:     log,
	}, nil
}

// Wire shape of the QCMobile carrier lookup.
type carrierResponse struct {
	Content struct {
		Carrier carrierRecord `json:"carrier"`
	} `json:"content"`
}

type carrierRecord struct {
	LegalName        string      `json:"legalName"`
	DBAName          string      `json:"dbaName"`
	DOTNumber        json.Number `json:"dotNumber"`
	AllowedToOperate string      `json:"allowedToOperate"`
	StatusCode       string      `json:"statusCode"`
	SafetyRating     string      `json:"safetyRating"`
	PhysicalState    string      `json:"phyState"`
}

// Validate looks up one MC number (digits only, pre-normalized by the
// caller) and reduces the registry's answer to a CarrierValidation.
func (v *Validator) Validate(ctx context.Context, mcNumber string) domain.CarrierValidation {
	defer obs.Time(ctx, v.log, "fmcsa.validate")(nil)

	result := domain.CarrierValidation{MCNumber: "MC" + mcNumber}

	req, err := v.newRequest(ctx, mcNumber)
	if err != nil {
		result.Detail = "registry request could not be built"
		return result
	}

	resp, err := v.do(req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound {
				result.Detail = "carrier not found"
				return result
			}
			v.log.Warn("registry error",
				zap.String("mc_number", mcNumber),
				zap.Int("status", he.Code),
			)
			result.Detail = fmt.Sprintf("registry error: status %d", he.Code)
			return result
		}

		result.Detail = transportDetail(err)
		v.log.Warn("registry unreachable",
			zap.String("mc_number", mcNumber),
			zap.Error(err),
		)
		return result
	}
	defer resp.Body.Close()

	var decoded carrierResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		result.Detail = "registry returned malformed response"
		return result
	}

	carrier := decoded.Content.Carrier
	result.LegalName = carrier.LegalName
	result.DBAName = carrier.DBAName
	result.DOTNumber = carrier.DOTNumber.String()
	result.OperatingStatus = carrier.StatusCode
	result.SafetyRating = carrier.SafetyRating
	result.PhysicalState = carrier.PhysicalState

	if carrier.AllowedToOperate == "Y" {
		result.IsValid = true
		result.Detail = "carrier is authorized to operate"
	} else {
		result.Detail = "carrier is not authorized to operate"
	}

	return result
}

func transportDetail(err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "registry unreachable: request timed out"
	}
	return "registry unreachable: connection failed"
}
