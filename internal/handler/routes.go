// internal/handler/routes.go
package handler

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRoutes, loans *LoanHandler, calc *CalculationHandler) {
	r.GET("/loans", loans.ListLoans)
	r.POST("/loans", loans.CreateLoan)
	r.POST("/loans/search", loans.SearchLoans)
	r.GET("/loans/:id", loans.GetLoan)
	r.PUT("/loans/:id", loans.UpdateLoan)
	r.DELETE("/loans/:id", loans.DeleteLoan)
	r.POST("/calculate-loan", calc.CalculateLoan)
}
