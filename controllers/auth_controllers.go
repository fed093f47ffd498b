package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/services"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> verify credentials, return JWT + profile
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Email and password required"))
		return
	}

	// Demo accounts carry plaintext passwords; the comparison mirrors
	// that. Which field was wrong is never disclosed.
	var user models.User
	if err := ac.DB.Where("email = ? AND password = ?", input.Email, input.Password).
		First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.RecordActivity(ac.DB, "User %s (%s) logged in", user.Name, user.Role)

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetMe returns the identity the auth middleware resolved for this request.
func (ac *AuthController) GetMe(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"id":    currentUserID(c),
		"name":  currentUserName(c),
		"email": c.GetString("user_email"),
		"role":  currentUserRole(c),
	})
}
