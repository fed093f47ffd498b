package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kibichokaranja/modern-maids-demo/controllers"
	"github.com/kibichokaranja/modern-maids-demo/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// Per-IP limit across the whole API; the login route carries its own
	// stricter limiter below.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	authCtrl := controllers.NewAuthController(db)
	cleanerCtrl := controllers.NewCleanerController(db)
	jobCtrl := controllers.NewJobController(db)
	timesheetCtrl := controllers.NewTimesheetController(db)
	activityCtrl := controllers.NewActivityController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	login := api.Group("/auth")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := api.Group("")
	authed.Use(middlewares.AuthMiddleware(db))
	{
		authed.GET("/me", authCtrl.GetMe)

		// JOBS (role-scoped listing; transitions guarded per job)
		authed.GET("/jobs", jobCtrl.GetAllJobs)
		authed.GET("/jobs/completed", jobCtrl.GetCompletedJobs)
		authed.PATCH("/jobs/:job_id/status", jobCtrl.UpdateJobStatus)
		authed.POST("/jobs/:job_id/checkin", jobCtrl.CheckIn)
		authed.POST("/jobs/:job_id/checkout", jobCtrl.CheckOut)

		// TIMESHEETS
		authed.GET("/timesheets", timesheetCtrl.GetAllTimesheets)
		authed.POST("/timesheets", timesheetCtrl.CreateTimesheet)
	}

	// ----------------------------------------------------------------
	//                      ADMIN CONSOLE ROUTES
	// ----------------------------------------------------------------
	admin := authed.Group("")
	admin.Use(middlewares.RequireAdmin())
	{
		admin.GET("/cleaners", cleanerCtrl.GetAllCleaners)
		admin.POST("/cleaners", cleanerCtrl.CreateCleaner)
		admin.GET("/cleaners/:cleaner_id/metrics", cleanerCtrl.GetCleanerMetrics)

		admin.POST("/jobs", jobCtrl.CreateJob)

		admin.GET("/activity", activityCtrl.GetActivity)
		admin.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
	}

	return r
}
