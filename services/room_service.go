package services

import (
	"hsquare-backend/config"
	"hsquare-backend/models"
)

type RoomService struct{}

func (s RoomService) Create(room models.Room) (models.Room, error) {
	err := config.DB.Create(&room).Error
	return room, err
}

func (s RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Find(&rooms).Error
	return rooms, err
}

func (s RoomService) GetByProperty(propertyID int) ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Where("property_id = ?", propertyID).Find(&rooms).Error
	return rooms, err
}

func (s RoomService) GetByID(id int) (models.Room, error) {
	var room models.Room
	err := config.DB.First(&room, id).Error
	return room, err
}

func (s RoomService) Update(room models.Room) error {
	return config.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

func (s RoomService) Delete(id int) error {
	return config.DB.Delete(&models.Room{}, id).Error
}
