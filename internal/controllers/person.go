package controllers

import (
	"net/http"

	"github.com/controle-gastos/backend/internal/httputil"
	"github.com/controle-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// PersonEditable are the fields of a person that clients can set.
type PersonEditable struct {
	Name string `json:"nome" example:"Maria"`
	Age  uint   `json:"idade" example:"34"`
}

func (editable PersonEditable) model() models.Person {
	return models.Person{
		Name: editable.Name,
		Age:  editable.Age,
	}
}

// RegisterPersonRoutes registers the routes for people with
// the RouterGroup that is passed.
func RegisterPersonRoutes(r *gin.RouterGroup) {
	r.GET("", GetPeople)
	r.POST("", CreatePerson)
	r.PUT("/:id", UpdatePerson)
	r.DELETE("/:id", DeletePerson)
}

// @Summary		List people
// @Description	Returns all registered people
// @Tags			People
// @Produce		json
// @Success		200	{array}	models.Person
// @Router			/api/pessoas [get]
func GetPeople(c *gin.Context) {
	people, err := models.People(models.DB)
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, people)
}

// @Summary		Create person
// @Description	Creates a new person
// @Tags			People
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Person
// @Failure		400		{string}	string
// @Param			person	body		PersonEditable	true	"Person"
// @Router			/api/pessoas [post]
func CreatePerson(c *gin.Context) {
	var editable PersonEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	person, err := models.CreatePerson(models.DB, editable.model())
	if err != nil {
		abortWithError(c, ruleStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// @Summary		Update person
// @Description	Updates the name and age of an existing person
// @Tags			People
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Person
// @Failure		400		{string}	string
// @Failure		404		{string}	string
// @Param			id		path		uint64			true	"ID of the person"
// @Param			person	body		PersonEditable	true	"Person"
// @Router			/api/pessoas/{id} [put]
func UpdatePerson(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	var editable PersonEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	person, err := models.UpdatePerson(models.DB, id, editable.model())
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// @Summary		Delete person
// @Description	Deletes a person and all their transactions
// @Tags			People
// @Success		200
// @Failure		404	{string}	string
// @Param			id	path		uint64	true	"ID of the person"
// @Router			/api/pessoas/{id} [delete]
func DeletePerson(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	err = models.DeletePerson(models.DB, id)
	if err != nil {
		abortWithError(c, status(err), err)
		return
	}

	c.Status(http.StatusOK)
}
