package entities

import "time"

// Vehicle represents a vehicle entity in the database. Configurator
// columns are pointers because they are nullable.
type Vehicle struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Type         string    `json:"type"`
	Price        float64   `json:"price"`
	EngineType   *string   `json:"engine_type,omitempty"`
	Transmission *string   `json:"transmission,omitempty"`
	FuelType     *string   `json:"fuel_type,omitempty"`
	Color        *string   `json:"color,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
