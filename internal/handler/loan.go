// internal/handler/loan.go
package handler

import (
	"loan-catalog/internal/service"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loans *service.LoanService
}

func NewLoanHandler(loans *service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

// ListLoans godoc
// @Summary List loan products
// @Description Whole catalog, or the products whose name contains `name` (case-insensitive)
// @Tags loans
// @Produce json
// @Param name query string false "Name substring"
// @Success 200 {array} LoanResponse
// @Failure 404 {object} map[string]string
// @Router /loans [get]
func (h *LoanHandler) ListLoans(c *gin.Context) {
	loans, err := h.loans.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoanResponses(loans))
}

// GetLoan godoc
// @Summary Get a loan product by id
// @Tags loans
// @Produce json
// @Param id path int true "Loan id"
// @Success 200 {object} LoanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loans/{id} [get]
func (h *LoanHandler) GetLoan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	loan, err := h.loans.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoanResponse(loan))
}

// CreateLoan godoc
// @Summary Create a loan product
// @Description The id is assigned by the catalog; the response is the full listing
// @Tags loans
// @Accept json
// @Produce json
// @Param request body CreateLoanRequest true "Loan product"
// @Success 200 {array} LoanResponse
// @Failure 400 {object} map[string]string
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if !bindJSON(c, &req) {
		return
	}

	loans, err := h.loans.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Loan product created", "product", req.ProductName)
	c.JSON(http.StatusOK, toLoanResponses(loans))
}

// UpdateLoan godoc
// @Summary Partially update a loan product
// @Description Only the supplied fields are changed; the id always comes from the path
// @Tags loans
// @Accept json
// @Produce json
// @Param id path int true "Loan id"
// @Param request body UpdateLoanRequest true "Fields to change"
// @Success 200 {object} LoanResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loans/{id} [put]
func (h *LoanHandler) UpdateLoan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateLoanRequest
	if !bindJSON(c, &req) {
		return
	}

	loan, err := h.loans.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Loan product updated", "loan_id", id)
	c.JSON(http.StatusOK, toLoanResponse(loan))
}

// DeleteLoan godoc
// @Summary Delete a loan product
// @Tags loans
// @Produce json
// @Param id path int true "Loan id"
// @Success 200 {object} map[string]string{"message":"Loan with id 1 deleted successfully"}
// @Failure 404 {object} map[string]string
// @Router /loans/{id} [delete]
func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	msg, err := h.loans.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Loan product deleted", "loan_id", id)
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// SearchLoans godoc
// @Summary Search loan products by name
// @Tags loans
// @Accept json
// @Produce json
// @Param request body SearchLoansRequest true "Name substring"
// @Success 200 {array} LoanResponse
// @Failure 404 {object} map[string]string
// @Router /loans/search [post]
func (h *LoanHandler) SearchLoans(c *gin.Context) {
	var req SearchLoansRequest
	if !bindJSON(c, &req) {
		return
	}

	loans, err := h.loans.Search(c.Request.Context(), req.ProductName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLoanResponses(loans))
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}
