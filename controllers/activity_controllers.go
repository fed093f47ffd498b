package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// GetActivity lists the audit trail newest first, honoring ?limit (default 50).
func (ac *ActivityController) GetActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	entries := []models.ActivityLog{}
	if err := ac.DB.Order("timestamp desc, id desc").Limit(limit).Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, entries)
}
