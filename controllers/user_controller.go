package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hsquare-backend/models"
	"hsquare-backend/services"
	"hsquare-backend/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

type UserController struct {
	UserSvc services.UserService
}

func NewUserController(svc services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// GET /api/users
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.UserSvc.GetAll()
	if err != nil {
		log.Printf("failed to list users: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GET /api/users/:id
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := uc.UserSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var user models.HsUser
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if user.Name == "" || user.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required")
		return
	}

	created, err := uc.UserSvc.Create(user)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("failed to create user: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var user models.HsUser
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	user.ID = uint(id)

	if err := uc.UserSvc.Update(user); err != nil {
		log.Printf("failed to update user %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user updated"})
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := uc.UserSvc.Delete(id); err != nil {
		log.Printf("failed to delete user %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
