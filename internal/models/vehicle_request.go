package models

// VehicleRequest represents the request body for creating or updating
// a vehicle. Name, brand, type and price are mandatory; configurator
// fields are optional.
type VehicleRequest struct {
	Name         string  `json:"name" binding:"required"`
	Brand        string  `json:"brand" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	EngineType   *string `json:"engine_type,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	FuelType     *string `json:"fuel_type,omitempty"`
	Color        *string `json:"color,omitempty"`
	Description  *string `json:"description,omitempty"`
}
