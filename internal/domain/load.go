package domain

// Represents a single freight shipment posted for booking.
// A Load has a unique numeric identifier and the descriptive
// attributes a carrier needs to decide whether to take it.
// Loads are read from the dataset once at startup and never
// mutated afterwards.
type Load struct {
	LoadID        int
	Origin        string
	Destination   string
	EquipmentType string
	Rate          float64
	Commodity     string
	PickupDate    string
	DeliveryDate  string
}
