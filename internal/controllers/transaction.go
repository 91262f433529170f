package controllers

import (
	"errors"
	"net/http"

	"github.com/controle-gastos/backend/internal/httputil"
	"github.com/controle-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionEditable are the fields of a transaction that clients can set.
type TransactionEditable struct {
	Description string          `json:"descricao" example:"Feira da semana"`
	Amount      decimal.Decimal `json:"valor" example:"152.37"`
	Type        models.Type     `json:"tipo" example:"despesa"`
	PersonID    uint64          `json:"pessoaId" example:"1"`
	CategoryID  uint64          `json:"categoriaId" example:"2"`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Description: editable.Description,
		Amount:      editable.Amount,
		Type:        editable.Type,
		PersonID:    editable.PersonID,
		CategoryID:  editable.CategoryID,
	}
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.GET("", GetTransactions)
	r.POST("", CreateTransaction)
	r.PUT("/:id", UpdateTransaction)
	r.DELETE("/:id", DeleteTransaction)
}

// @Summary		List transactions
// @Description	Returns all registered transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}	models.Transaction
// @Router			/api/transacoes [get]
func GetTransactions(c *gin.Context) {
	transactions, err := models.Transactions(models.DB)
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		Create transaction
// @Description	Creates a new transaction after checking the business rules
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{string}	string
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transacoes [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	transaction, err := models.CreateTransaction(models.DB, editable.model())
	if err != nil {
		abortWithError(c, ruleStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Update transaction
// @Description	Overwrites a transaction and re-checks all business rules
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Param			id			path		uint64				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transacoes/{id} [put]
func UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	var editable TransactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	transaction, err := models.UpdateTransaction(models.DB, id, editable.model())
	if err != nil {
		// The transaction itself is the target of this operation, a
		// missing referenced person or category is a rule violation.
		if errors.Is(err, models.ErrTransactionNotFound) {
			abortWithError(c, http.StatusNotFound, err)
			return
		}

		abortWithError(c, ruleStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		200
// @Failure		404	{string}	string
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/api/transacoes/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	err = models.DeleteTransaction(models.DB, id)
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.Status(http.StatusOK)
}
