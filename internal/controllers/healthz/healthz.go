// Package healthz provides the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/controle-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health endpoint with the RouterGroup that
// is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		200	{object}	map[string]string
// @Failure		500	{string}	string
// @Router			/health [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
