package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/config"
	"github.com/kibichokaranja/modern-maids-demo/database"
	"github.com/kibichokaranja/modern-maids-demo/models"
	"github.com/kibichokaranja/modern-maids-demo/router"
	"github.com/kibichokaranja/modern-maids-demo/utils"
)

func init() {
	// .env is optional; a deployment may configure everything via the
	// environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed demo data: %v", err)
	}
	logDatasetCounts(db)

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4002"
	}
	utils.InfoLogger.Printf("Modern Maids server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Cleaner{},
		&models.Job{},
		&models.Timesheet{},
		&models.ActivityLog{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

func logDatasetCounts(db *gorm.DB) {
	var users, cleaners, jobs, timesheets, activity int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Cleaner{}).Count(&cleaners)
	db.Model(&models.Job{}).Count(&jobs)
	db.Model(&models.Timesheet{}).Count(&timesheets)
	db.Model(&models.ActivityLog{}).Count(&activity)

	utils.InfoLogger.Printf("Data loaded: %d users, %d cleaners, %d jobs, %d timesheets, %d activity entries",
		users, cleaners, jobs, timesheets, activity)
}
