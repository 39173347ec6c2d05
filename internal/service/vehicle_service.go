package service

import (
	"vconfig-be/internal/entities"
	"vconfig-be/internal/models"
	"vconfig-be/internal/repository"
)

// VehicleService defines the interface for vehicle business logic
type VehicleService interface {
	Create(req *models.VehicleRequest) (*entities.Vehicle, error)
	GetAll() ([]*entities.Vehicle, error)
	GetByID(id int) (*entities.Vehicle, error)
	Update(id int, req *models.VehicleRequest) (*entities.Vehicle, error)
	Delete(id int) error
	SearchByBrand(brand string) ([]*entities.Vehicle, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Create(req *models.VehicleRequest) (*entities.Vehicle, error) {
	return s.repo.Create(req)
}

func (s *vehicleService) GetAll() ([]*entities.Vehicle, error) {
	return s.repo.GetAll()
}

func (s *vehicleService) GetByID(id int) (*entities.Vehicle, error) {
	return s.repo.GetByID(id)
}

func (s *vehicleService) Update(id int, req *models.VehicleRequest) (*entities.Vehicle, error) {
	return s.repo.Update(id, req)
}

func (s *vehicleService) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *vehicleService) SearchByBrand(brand string) ([]*entities.Vehicle, error) {
	return s.repo.SearchByBrand(brand)
}
