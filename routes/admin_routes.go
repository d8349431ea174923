package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/controllers"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.POST("/locations", adminController.CreateLocation)
	admin.PUT("/locations/:id", adminController.UpdateLocation)
	admin.DELETE("/locations/:id", adminController.DeleteLocation)
	admin.GET("/users", adminController.ListUsers)
}
