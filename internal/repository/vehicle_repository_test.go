package repository

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vconfig-be/internal/models"
)

var vehicleCols = []string{"id", "name", "brand", "type", "price", "engine_type", "transmission", "fuel_type", "color", "description", "created_at"}

func vehicleRow(id int, name, brand string) []driver.Value {
	return []driver.Value{id, name, brand, "SUV", 25000.0, nil, nil, nil, nil, nil, time.Now()}
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vehicles")).
		WithArgs("Nexon", "Tata", "SUV", 25000.0, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(vehicleCols).AddRow(vehicleRow(1, "Nexon", "Tata")...))

	vehicle, err := repo.Create(&models.VehicleRequest{
		Name: "Nexon", Brand: "Tata", Type: "SUV", Price: 25000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, vehicle.ID)
	assert.Equal(t, "Tata", vehicle.Brand)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles WHERE id = $1")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_SearchByBrand(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE brand ILIKE '%' || $1 || '%'")).
		WithArgs("tata").
		WillReturnRows(sqlmock.NewRows(vehicleCols).
			AddRow(vehicleRow(1, "Nexon", "Tata")...).
			AddRow(vehicleRow(2, "Harrier", "Tata")...))

	vehicles, err := repo.SearchByBrand("tata")
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "Harrier", vehicles[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicles")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicles")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vehicles")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(42, &models.VehicleRequest{
		Name: "Nexon", Brand: "Tata", Type: "SUV", Price: 25000,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
