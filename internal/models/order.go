package models

// Mobile-money providers accepted at checkout.
const (
	ProviderMTN        = "MTN"
	ProviderVodafone   = "Vodafone"
	ProviderAirtelTigo = "AirtelTigo"
)

// OrderItem is one line of a committed order: the id/name/price triple of a
// cart item at commit time.
type OrderItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order is a committed checkout. Orders are immutable once created and live
// in the append-only sequence persisted to the orders file. Timestamp is the
// commit instant in UTC, ISO-8601.
type Order struct {
	User      string      `json:"user"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Provider  string      `json:"provider"`
	Momo      string      `json:"momo"`
	Timestamp string      `json:"timestamp"`
}
