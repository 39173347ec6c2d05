package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"vconfig-be/internal/entities"
	"vconfig-be/internal/models"
)

// VehicleRepository defines the interface for vehicle database operations
type VehicleRepository interface {
	Create(req *models.VehicleRequest) (*entities.Vehicle, error)
	GetAll() ([]*entities.Vehicle, error)
	GetByID(id int) (*entities.Vehicle, error)
	Update(id int, req *models.VehicleRequest) (*entities.Vehicle, error)
	Delete(id int) error
	SearchByBrand(brand string) ([]*entities.Vehicle, error)
}

type vehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sql.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = "id, name, brand, type, price, engine_type, transmission, fuel_type, color, description, created_at"

func scanVehicle(row *sql.Row) (*entities.Vehicle, error) {
	var v entities.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Brand,
		&v.Type,
		&v.Price,
		&v.EngineType,
		&v.Transmission,
		&v.FuelType,
		&v.Color,
		&v.Description,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVehicles(rows *sql.Rows) ([]*entities.Vehicle, error) {
	defer rows.Close()

	var vehicles []*entities.Vehicle
	for rows.Next() {
		var v entities.Vehicle
		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Brand,
			&v.Type,
			&v.Price,
			&v.EngineType,
			&v.Transmission,
			&v.FuelType,
			&v.Color,
			&v.Description,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicles: %w", err)
	}

	return vehicles, nil
}

// Create inserts a new vehicle into the database
func (r *vehicleRepository) Create(req *models.VehicleRequest) (*entities.Vehicle, error) {
	query := `
		INSERT INTO vehicles (name, brand, type, price, engine_type, transmission, fuel_type, color, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(r.db.QueryRow(query,
		req.Name, req.Brand, req.Type, req.Price,
		req.EngineType, req.Transmission, req.FuelType, req.Color, req.Description,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return vehicle, nil
}

// GetAll retrieves all vehicles
func (r *vehicleRepository) GetAll() ([]*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	return scanVehicles(rows)
}

// GetByID finds a vehicle by ID
func (r *vehicleRepository) GetByID(id int) (*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}

	return vehicle, nil
}

// Update replaces the fields of a vehicle by ID
func (r *vehicleRepository) Update(id int, req *models.VehicleRequest) (*entities.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET name=$1, brand=$2, type=$3, price=$4, engine_type=$5, transmission=$6, fuel_type=$7, color=$8, description=$9
		WHERE id=$10
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(r.db.QueryRow(query,
		req.Name, req.Brand, req.Type, req.Price,
		req.EngineType, req.Transmission, req.FuelType, req.Color, req.Description,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return vehicle, nil
}

// Delete removes a vehicle from the database
func (r *vehicleRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// SearchByBrand retrieves vehicles whose brand contains the given
// substring, case-insensitively.
func (r *vehicleRepository) SearchByBrand(brand string) ([]*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE brand ILIKE '%' || $1 || '%' ORDER BY id ASC`

	rows, err := r.db.Query(query, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}

	return scanVehicles(rows)
}
