package domain

// Product is a catalog item offered for booking. Catalog data is a read-only
// collaborator: a booking copies the product into its Details snapshot at
// creation time and never reads the catalog again.
type Product struct {
	ProductID string            `json:"productID"`
	Type      BookingType       `json:"type"`
	Name      string            `json:"name"`
	Provider  string            `json:"provider"`
	Origin    string            `json:"origin,omitempty"`
	Dest      string            `json:"dest,omitempty"`
	Location  string            `json:"location,omitempty"`
	Price     int64             `json:"price"` // minor currency units
	Extras    map[string]string `json:"extras,omitempty"`
}
