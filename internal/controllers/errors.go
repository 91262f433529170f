package controllers

import (
	"errors"
	"net/http"

	"github.com/controle-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// status maps a service error for operations that address their target by
// ID: a missing target is a 404, a broken rule a 400.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if models.IsNotFound(err) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// ruleStatus maps an error of the transaction validation path. There a
// missing referenced person or category is a rule violation like any other,
// not a missing target, so it maps to a 400.
func ruleStatus(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// abortWithError writes the error message as a plain text response. The web
// UI shows these messages to the user as is.
func abortWithError(c *gin.Context, status int, err error) {
	c.String(status, err.Error())
}
