package services

import (
	"hsquare-backend/config"
	"hsquare-backend/models"
)

type UserService struct{}

func (s UserService) Create(user models.HsUser) (models.HsUser, error) {
	err := config.DB.Create(&user).Error
	return user, err
}

func (s UserService) GetAll() ([]models.HsUser, error) {
	var users []models.HsUser
	err := config.DB.Find(&users).Error
	return users, err
}

func (s UserService) GetByID(id int) (models.HsUser, error) {
	var user models.HsUser
	err := config.DB.First(&user, id).Error
	return user, err
}

func (s UserService) Update(user models.HsUser) error {
	return config.DB.Model(&models.HsUser{}).Where("id = ?", user.ID).Updates(user).Error
}

func (s UserService) Delete(id int) error {
	return config.DB.Delete(&models.HsUser{}, id).Error
}
