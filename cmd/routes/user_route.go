package routes

import (
	"directory-service/cmd/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoute(router *gin.Engine, ctrl *controllers.Controller) {
	router.GET("/", ctrl.UserRoot())
	router.GET("/user", ctrl.GetUsers())
	router.POST("/user", ctrl.CreateUser())
}
