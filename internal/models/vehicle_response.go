package models

import "vconfig-be/internal/entities"

// VehicleResponse wraps a single vehicle in the success envelope.
type VehicleResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Vehicle *entities.Vehicle `json:"vehicle,omitempty"`
}

// VehicleListResponse wraps a list of vehicles in the success envelope.
type VehicleListResponse struct {
	Success  bool                `json:"success"`
	Total    int                 `json:"total,omitempty"`
	Vehicles []*entities.Vehicle `json:"vehicles"`
}
