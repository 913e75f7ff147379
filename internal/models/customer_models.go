package models

// Customer is pure reference data; it never interacts with the ledger.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Address *string `json:"address,omitempty"`
}
