package dto

type ValidateCarrierRequest struct {
	MCNumber string `json:"mc_number"`
}

// mc_number, is_valid and detail are the stable contract; the remaining
// fields are registry details passed through when the lookup succeeds.
type CarrierValidationResponse struct {
	MCNumber        string `json:"mc_number"`
	IsValid         bool   `json:"is_valid"`
	Detail          string `json:"detail"`
	LegalName       string `json:"legal_name,omitempty"`
	DBAName         string `json:"dba_name,omitempty"`
	DOTNumber       string `json:"dot_number,omitempty"`
	OperatingStatus string `json:"operating_status,omitempty"`
	SafetyRating    string `json:"safety_rating,omitempty"`
	PhysicalState   string `json:"physical_state,omitempty"`
}
