package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hsquare-backend/config"
	"hsquare-backend/models"

	"github.com/gin-gonic/gin"
)

// ----------------------------------------------------
// 1. Get Properties (GET /api/properties)
// ----------------------------------------------------

func GetProperties(c *gin.Context) {
	var properties []models.Property
	config.DB.Preload("Rooms").Find(&properties)

	c.JSON(http.StatusOK, properties)
}

// ----------------------------------------------------
// 2. Get Property (GET /api/properties/:id)
// ----------------------------------------------------

func GetProperty(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := config.DB.Preload("Rooms").First(&property, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Property with ID %s not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, property)
}

// ----------------------------------------------------
// 3. Create Property (POST /api/properties)
// ----------------------------------------------------

func CreateProperty(c *gin.Context) {
	var property models.Property

	if err := c.ShouldBindJSON(&property); err != nil {
		log.Printf("property binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	property.Name = strings.TrimSpace(property.Name)
	if property.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Property name is required.",
		})
		return
	}

	if property.PropertyType == "" {
		property.PropertyType = models.PropertyHotel
	}
	if property.PropertyType != models.PropertyHotel && property.PropertyType != models.PropertyHostel {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "property_type must be hotel or hostel.",
		})
		return
	}

	if result := config.DB.Create(&property); result.Error != nil {
		log.Printf("DB error creating property: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, property)
}

// ----------------------------------------------------
// 4. Update Property (PATCH /api/properties/:id)
// ----------------------------------------------------

func UpdateProperty(c *gin.Context) {
	id := c.Param("id")
	var updateData map[string]interface{}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "updated_at")
	delete(updateData, "deleted_at")
	delete(updateData, "rooms")

	if pt, ok := updateData["property_type"].(string); ok {
		if pt != string(models.PropertyHotel) && pt != string(models.PropertyHostel) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "property_type must be hotel or hostel.",
			})
			return
		}
	}

	if err := config.DB.Model(&models.Property{}).Where("id = ?", id).Updates(updateData).Error; err != nil {
		log.Printf("update error for property %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property updated successfully",
	})
}

// ----------------------------------------------------
// 5. Delete Property (DELETE /api/properties/:id)
// ----------------------------------------------------

func DeleteProperty(c *gin.Context) {
	id := c.Param("id")

	idNum, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid property id.",
		})
		return
	}

	result := config.DB.Where("id = ?", idNum).Delete(&models.Property{})
	if result.Error != nil {
		log.Printf("DB error deleting property %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete property.",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Property with ID %s not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property deleted successfully",
	})
}
