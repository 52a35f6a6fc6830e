package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/controllers"
	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	driveController *controllers.DriveController,
	studentController *controllers.StudentController,
	boardController *controllers.BoardController,
	panelController *controllers.PanelController,
	evaluationController *controllers.EvaluationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Everything else requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)

		// User registration is an admin operation
		adminAuth := authenticated.Group("/auth")
		adminAuth.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminAuth.POST("/register", authController.Register)
		}

		// College routes, writes restricted to admins
		colleges := authenticated.Group("/colleges")
		{
			colleges.GET("", collegeController.GetAllColleges)
			colleges.GET("/:id", collegeController.GetCollegeByID)

			collegesAdmin := colleges.Group("")
			collegesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				collegesAdmin.POST("", collegeController.CreateCollege)
				collegesAdmin.PUT("/:id", collegeController.UpdateCollege)
				collegesAdmin.DELETE("/:id", collegeController.DeleteCollege)
			}
		}

		// Drive routes and everything nested under a drive
		drives := authenticated.Group("/drives")
		{
			drives.GET("", driveController.GetAllDrives)
			drives.GET("/:driveId", driveController.GetDriveByID)
			drives.POST("", driveController.CreateDrive)
			drives.PUT("/:driveId", driveController.UpdateDrive)

			drivesAdmin := drives.Group("")
			drivesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				drivesAdmin.DELETE("/:driveId", driveController.DeleteDrive)
			}

			// Roster
			drives.POST("/:driveId/students", studentController.CreateStudent)
			drives.GET("/:driveId/students", studentController.GetRoster)

			// Pipeline board
			drives.GET("/:driveId/board", boardController.GetBoard)
			drives.POST("/:driveId/board/transitions", boardController.MoveStudent)

			// Panels
			drives.POST("/:driveId/panels", panelController.CreatePanel)
			drives.GET("/:driveId/panels", panelController.GetPanelsByDrive)

			// Pre-screening evaluations
			drives.POST("/:driveId/evaluations", evaluationController.StartEvaluation)
			drives.GET("/:driveId/evaluations", evaluationController.GetEvaluationsByDrive)
		}

		// Student routes addressed by student ID
		students := authenticated.Group("/students")
		{
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		// Panel routes addressed by panel ID
		panels := authenticated.Group("/panels")
		{
			panels.GET("/:id", panelController.GetPanelByID)
			panels.DELETE("/:id", panelController.DeletePanel)
			panels.POST("/:id/members", panelController.AddPanelMember)
			panels.DELETE("/:id/members/:userId", panelController.RemovePanelMember)
			panels.POST("/:id/assignments/:studentId", panelController.AssignPanelToStudent)
		}

		// Evaluation jobs addressed by job ID
		evaluations := authenticated.Group("/evaluations")
		{
			evaluations.GET("/:id", evaluationController.GetEvaluationByID)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
