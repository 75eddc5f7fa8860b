package routes

import (
	"directory-service/cmd/controllers"

	"github.com/gin-gonic/gin"
)

func CompanyRoute(router *gin.Engine, ctrl *controllers.Controller) {
	router.GET("/", ctrl.CompanyRoot())
	router.GET("/company", ctrl.GetCompanies())
	router.POST("/company", ctrl.CreateCompany())
	router.POST("/company/employee", ctrl.AddEmployee())
}
