package model

import "time"

// Kind is the pasta category of a product.
type Kind string

// Supported kinds. The values are stored verbatim in the produtos table.
const (
	KindFrozen Kind = "congelada"
	KindFresh  Kind = "fresca"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k == KindFrozen || k == KindFresh
}

// Product represents a pasta product held in stock.
type Product struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Kind       Kind      `json:"kind" db:"kind"`
	Quantity   int       `json:"quantity" db:"quantity"`
	OutOfStock bool      `json:"out_of_stock" db:"out_of_stock"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// ProductInput is the partial product payload accepted by create and update.
// A nil field means the caller did not supply it; JSON null decodes to nil too.
type ProductInput struct {
	Name       *string `json:"name,omitempty"`
	Kind       *Kind   `json:"kind,omitempty"`
	Quantity   *int    `json:"quantity,omitempty"`
	OutOfStock *bool   `json:"out_of_stock,omitempty"`
}

// Changes returns the supplied fields keyed by column name.
func (in ProductInput) Changes() map[string]interface{} {
	changes := make(map[string]interface{}, 4)
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Kind != nil {
		changes["kind"] = string(*in.Kind)
	}
	if in.Quantity != nil {
		changes["quantity"] = *in.Quantity
	}
	if in.OutOfStock != nil {
		changes["out_of_stock"] = *in.OutOfStock
	}
	return changes
}

// DeleteResponse confirms a delete and carries the row's last known state.
type DeleteResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// HealthResponse is returned by the health and readiness probes.
type HealthResponse struct {
	Status string `json:"status"`
}
