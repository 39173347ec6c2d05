package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"vconfig-be/internal/models"
	"vconfig-be/internal/repository"
	"vconfig-be/internal/service"
)

type VehicleController struct {
	vehicleService service.VehicleService
}

func NewVehicleController(vehicleService service.VehicleService) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
	}
}

func vehicleID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid vehicle ID",
		})
		return 0, false
	}
	return id, true
}

// Create handles POST /api/vehicles
func (vc *VehicleController) Create(c *gin.Context) {
	var req models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
		})
		return
	}

	vehicle, err := vc.vehicleService.Create(&req)
	if err != nil {
		log.Error().Err(err).Msg("failed to add vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	c.JSON(http.StatusCreated, models.VehicleResponse{
		Success: true,
		Vehicle: vehicle,
	})
}

// GetAll handles GET /api/vehicles
func (vc *VehicleController) GetAll(c *gin.Context) {
	vehicles, err := vc.vehicleService.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch vehicles")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, models.VehicleListResponse{
		Success:  true,
		Vehicles: vehicles,
	})
}

// GetByID handles GET /api/vehicles/:id
func (vc *VehicleController) GetByID(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	vehicle, err := vc.vehicleService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Vehicle not found",
			})
			return
		}
		log.Error().Err(err).Int("id", id).Msg("failed to fetch vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, models.VehicleResponse{
		Success: true,
		Vehicle: vehicle,
	})
}

// Update handles PUT /api/vehicles/:id
func (vc *VehicleController) Update(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	var req models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All fields are required",
		})
		return
	}

	vehicle, err := vc.vehicleService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Vehicle not found",
			})
			return
		}
		log.Error().Err(err).Int("id", id).Msg("failed to update vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, models.VehicleResponse{
		Success: true,
		Message: "Vehicle updated successfully",
		Vehicle: vehicle,
	})
}

// Delete handles DELETE /api/vehicles/:id
func (vc *VehicleController) Delete(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	if err := vc.vehicleService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Vehicle not found",
			})
			return
		}
		log.Error().Err(err).Int("id", id).Msg("failed to delete vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vehicle deleted successfully",
	})
}

// Search handles GET /api/vehicles/search?brand=<substring>
func (vc *VehicleController) Search(c *gin.Context) {
	brand := c.Query("brand")
	if brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Brand query parameter is required",
		})
		return
	}

	vehicles, err := vc.vehicleService.SearchByBrand(brand)
	if err != nil {
		log.Error().Err(err).Str("brand", brand).Msg("failed to search vehicles")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, models.VehicleListResponse{
		Success:  true,
		Total:    len(vehicles),
		Vehicles: vehicles,
	})
}
