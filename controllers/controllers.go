package controllers

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/kibichokaranja/modern-maids-demo/models"
)

// Identity keys are set by middlewares.AuthMiddleware.

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func currentUserName(c *gin.Context) string {
	return c.GetString("user_name")
}

func currentUserRole(c *gin.Context) string {
	return c.GetString("user_role")
}

func isCleaner(c *gin.Context) bool {
	return currentUserRole(c) == models.RoleCleaner
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
