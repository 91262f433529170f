package controllers

import (
	"net/http"

	"github.com/controle-gastos/backend/internal/httputil"
	"github.com/controle-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable are the fields of a category that clients can set.
type CategoryEditable struct {
	Description string         `json:"descricao" example:"Mercado"`
	Purpose     models.Purpose `json:"finalidade" example:"despesa"`
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Description: editable.Description,
		Purpose:     editable.Purpose,
	}
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
	r.PUT("/:id", UpdateCategory)
	r.DELETE("/:id", DeleteCategory)
}

// @Summary		List categories
// @Description	Returns all registered categories
// @Tags			Categories
// @Produce		json
// @Success		200	{array}	models.Category
// @Router			/api/categorias [get]
func GetCategories(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{string}	string
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/categorias [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	category, err := models.CreateCategory(models.DB, editable.model())
	if err != nil {
		abortWithError(c, ruleStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Update category
// @Description	Updates the description and purpose of an existing category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{string}	string
// @Failure		404			{string}	string
// @Param			id			path		uint64				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/categorias/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	category, err := models.UpdateCategory(models.DB, id, editable.model())
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Delete category
// @Description	Deletes a category and all transactions referencing it
// @Tags			Categories
// @Success		200
// @Failure		404	{string}	string
// @Param			id	path		uint64	true	"ID of the category"
// @Router			/api/categorias/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	err = models.DeleteCategory(models.DB, id)
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.Status(http.StatusOK)
}
