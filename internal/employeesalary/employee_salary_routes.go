package employeesalary

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
) {
	salaries := r.Group("/salary")
	{
		salaries.GET("/search/all", handler.GetAll)
		salaries.GET("/search/:id", handler.GetByEmployeeID)
		salaries.POST("/create", handler.Create)
	}
}
