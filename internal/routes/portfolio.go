package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-api/internal/handlers"
)

type PortfolioRoutes struct {
	handler *handlers.PortfolioHandler
}

func NewPortfolioRoutes(handler *handlers.PortfolioHandler) *PortfolioRoutes {
	return &PortfolioRoutes{handler: handler}
}

func (r *PortfolioRoutes) RegisterRoutes(router *gin.RouterGroup) {
	portfolio := router.Group("/portfolio")
	{
		portfolio.GET("", r.handler.ListPortfolio)
		portfolio.GET("/:id", r.handler.GetPortfolio)
		portfolio.POST("", r.handler.CreatePortfolio)
		portfolio.PUT("/:id", r.handler.UpdatePortfolio)
		portfolio.DELETE("/:id", r.handler.DeletePortfolio)
	}
}
