package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"hsquare-backend/config"
	"hsquare-backend/models"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms, optional ?property_id=)
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	var rooms []models.Room

	q := config.DB
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	q.Find(&rooms)

	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("room binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Room name is required.",
		})
		return
	}

	if room.PropertyID != 0 {
		var property models.Property
		if err := config.DB.First(&property, room.PropertyID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid property_id provided.",
			})
			return
		}
	}

	if room.Discount != nil && (*room.Discount < 0 || *room.Discount > 100) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Discount must be between 0 and 100.",
		})
		return
	}

	if result := config.DB.Create(&room); result.Error != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(result.Error, &mysqlErr) && mysqlErr.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room '%s' already exists.", room.Name),
			})
			return
		}

		log.Printf("DB error creating room: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PATCH /api/rooms/:id)
// ----------------------------------------------------

func UpdateRoom(c *gin.Context) {
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

	if raw, ok := updateData["discount"]; ok && raw != nil {
		if d, ok := raw.(float64); ok && (d < 0 || d > 100) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Discount must be between 0 and 100.",
			})
			return
		}
	}

	if err := config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updateData).Error; err != nil {
		log.Printf("update error for room %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room updated successfully",
	})
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Room{})

	if result.Error != nil {
		log.Printf("DB error deleting room %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete room.",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %s not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}
