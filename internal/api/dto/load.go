package dto

type LoadResponse struct {
	LoadID        int     `json:"load_id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	EquipmentType string  `json:"equipment_type"`
	Rate          float64 `json:"rate"`
	Commodity     string  `json:"commodity"`
	PickupDate    string  `json:"pickup_date"`
	DeliveryDate  string  `json:"delivery_date"`
}
