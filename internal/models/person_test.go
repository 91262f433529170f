package models_test

import (
	"github.com/controle-gastos/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreatePerson() {
	person, err := models.CreatePerson(models.DB, models.Person{Name: "Maria", Age: 34})
	require.Nil(suite.T(), err)
	assert.NotZero(suite.T(), person.ID)
	assert.Equal(suite.T(), "Maria", person.Name)
}

func (suite *TestSuiteStandard) TestCreatePersonWithoutName() {
	_, err := models.CreatePerson(models.DB, models.Person{Name: "   ", Age: 34})
	assert.ErrorIs(suite.T(), err, models.ErrNameMissing)
}

func (suite *TestSuiteStandard) TestUpdatePerson() {
	person := suite.createTestPerson(models.Person{Name: "Maria", Age: 34})

	updated, err := models.UpdatePerson(models.DB, person.ID, models.Person{Name: "Maria Silva", Age: 35})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), person.ID, updated.ID)
	assert.Equal(suite.T(), "Maria Silva", updated.Name)
	assert.Equal(suite.T(), uint(35), updated.Age)
}

func (suite *TestSuiteStandard) TestUpdatePersonNotFound() {
	_, err := models.UpdatePerson(models.DB, 4096, models.Person{Name: "Teste"})
	assert.ErrorIs(suite.T(), err, models.ErrPersonNotFound)
}

func (suite *TestSuiteStandard) TestDeletePersonNotFound() {
	err := models.DeletePerson(models.DB, 4096)
	assert.ErrorIs(suite.T(), err, models.ErrPersonNotFound)
}

// TestDeletePersonCascades verifies that deleting a person deletes exactly
// the transactions referencing that person and nothing else.
func (suite *TestSuiteStandard) TestDeletePersonCascades() {
	maria := suite.createTestPerson(models.Person{Age: 34})
	joao := suite.createTestPerson(models.Person{Age: 28})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	for range 3 {
		suite.createTestTransaction(models.Transaction{
			Amount:     decimal.RequireFromString("10.00"),
			Type:       models.TypeExpense,
			PersonID:   maria.ID,
			CategoryID: category.ID,
		})
	}

	kept := suite.createTestTransaction(models.Transaction{
		Amount:     decimal.RequireFromString("25.00"),
		Type:       models.TypeExpense,
		PersonID:   joao.ID,
		CategoryID: category.ID,
	})

	require.Nil(suite.T(), models.DeletePerson(models.DB, maria.ID))

	var transactions []models.Transaction
	require.Nil(suite.T(), models.DB.Find(&transactions).Error)
	require.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), kept.ID, transactions[0].ID)

	err := models.DB.First(&models.Person{}, maria.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrPersonNotFound)
}
