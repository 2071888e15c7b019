package domain

// Airport is one entry of the static airport directory.
type Airport struct {
	IATA    string `json:"iata"`
	City    string `json:"city"`
	Country string `json:"country"`
	Name    string `json:"name"`
}

// Destination is a suggested place to travel for a given trip style.
type Destination struct {
	City   string `json:"city"`
	IATA   string `json:"iata"`
	Reason string `json:"reason"`
}
