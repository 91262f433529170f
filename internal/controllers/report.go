package controllers

import (
	"net/http"

	"github.com/controle-gastos/backend/internal/models"
	"github.com/controle-gastos/backend/internal/reports"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the report routes with the RouterGroup
// that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.GET("/relatorios/pessoas", GetPersonReport)
	r.GET("/relatorios/categorias", GetCategoryReport)

	// Compatibility aliases for older clients that expect the bare list
	// of totals without the wrapper object.
	r.GET("/totais-por-pessoa", GetPersonTotals)
	r.GET("/totais-por-categoria", GetCategoryTotals)
}

func personReport() (reports.PersonReport, error) {
	var people []models.Person
	err := models.DB.Preload("Transactions").Find(&people).Error
	if err != nil {
		return reports.PersonReport{}, err
	}

	return reports.ByPerson(people), nil
}

func categoryReport() (reports.CategoryReport, error) {
	var categories []models.Category
	err := models.DB.Preload("Transactions").Find(&categories).Error
	if err != nil {
		return reports.CategoryReport{}, err
	}

	return reports.ByCategory(categories), nil
}

// @Summary		Totals by person
// @Description	Returns income, expense and balance totals per person plus the overall totals
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	reports.PersonReport
// @Router			/api/relatorios/pessoas [get]
func GetPersonReport(c *gin.Context) {
	report, err := personReport()
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary		Totals by category
// @Description	Returns income, expense and balance totals per category plus the overall totals
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	reports.CategoryReport
// @Router			/api/relatorios/categorias [get]
func GetCategoryReport(c *gin.Context) {
	report, err := categoryReport()
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary		Totals by person, list only
// @Description	Returns the per-person totals without the wrapper object
// @Tags			Reports
// @Produce		json
// @Success		200	{array}	reports.PersonTotals
// @Router			/api/totais-por-pessoa [get]
func GetPersonTotals(c *gin.Context) {
	report, err := personReport()
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, report.Details)
}

// @Summary		Totals by category, list only
// @Description	Returns the per-category totals without the wrapper object
// @Tags			Reports
// @Produce		json
// @Success		200	{array}	reports.CategoryTotals
// @Router			/api/totais-por-categoria [get]
func GetCategoryTotals(c *gin.Context) {
	report, err := categoryReport()
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, report.Details)
}
