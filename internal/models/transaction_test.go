package models_test

import (
	"testing"

	"github.com/controle-gastos/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	person := suite.createTestPerson(models.Person{Age: 30})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	transaction, err := models.CreateTransaction(models.DB, models.Transaction{
		Description: "Feira da semana",
		Amount:      decimal.RequireFromString("152.37"),
		Type:        models.TypeExpense,
		PersonID:    person.ID,
		CategoryID:  category.ID,
	})
	require.Nil(suite.T(), err)
	assert.NotZero(suite.T(), transaction.ID)

	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestCreateTransactionRejections() {
	minor := suite.createTestPerson(models.Person{Age: 16})
	adult := suite.createTestPerson(models.Person{Age: 30})
	salary := suite.createTestCategory(models.Category{Purpose: models.PurposeIncome})
	rent := suite.createTestCategory(models.Category{Purpose: models.PurposeExpense})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"unknown person",
			models.Transaction{Type: models.TypeExpense, PersonID: 4096, CategoryID: rent.ID},
			models.ErrPersonNotFound,
		},
		{
			"minor income",
			models.Transaction{Type: models.TypeIncome, PersonID: minor.ID, CategoryID: salary.ID},
			models.ErrMinorIncome,
		},
		{
			"unknown category",
			models.Transaction{Type: models.TypeExpense, PersonID: adult.ID, CategoryID: 4096},
			models.ErrCategoryNotFound,
		},
		{
			"expense in income category",
			models.Transaction{Type: models.TypeExpense, PersonID: adult.ID, CategoryID: salary.ID},
			models.ErrIncompatiblePurpose,
		},
		{
			"income in expense category",
			models.Transaction{Type: models.TypeIncome, PersonID: adult.ID, CategoryID: rent.ID},
			models.ErrIncompatiblePurpose,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.transaction.Description = "Teste"
			tt.transaction.Amount = decimal.RequireFromString("10.00")

			_, err := models.CreateTransaction(models.DB, tt.transaction)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	// None of the rejected transactions may have been persisted
	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestCreateTransactionInputChecks() {
	person := suite.createTestPerson(models.Person{Age: 30})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	tests := []struct {
		name        string
		description string
		amount      decimal.Decimal
		typ         models.Type
		err         error
	}{
		{"empty description", "  ", decimal.RequireFromString("10.00"), models.TypeExpense, models.ErrDescriptionMissing},
		{"zero amount", "Teste", decimal.Zero, models.TypeExpense, models.ErrAmountNotPositive},
		{"negative amount", "Teste", decimal.RequireFromString("-3.50"), models.TypeExpense, models.ErrAmountNotPositive},
		{"unknown type", "Teste", decimal.RequireFromString("10.00"), models.Type("transferencia"), models.ErrInvalidType},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.CreateTransaction(models.DB, models.Transaction{
				Description: tt.description,
				Amount:      tt.amount,
				Type:        tt.typ,
				PersonID:    person.ID,
				CategoryID:  category.ID,
			})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	person := suite.createTestPerson(models.Person{Age: 30})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Antes",
		Amount:      decimal.RequireFromString("50.00"),
		Type:        models.TypeExpense,
		PersonID:    person.ID,
		CategoryID:  category.ID,
	})

	updated, err := models.UpdateTransaction(models.DB, transaction.ID, models.Transaction{
		Description: "Depois",
		Amount:      decimal.RequireFromString("75.50"),
		Type:        models.TypeIncome,
		PersonID:    person.ID,
		CategoryID:  category.ID,
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), transaction.ID, updated.ID)
	assert.Equal(suite.T(), "Depois", updated.Description)
	assert.Equal(suite.T(), models.TypeIncome, updated.Type)
	assert.True(suite.T(), updated.Amount.Equal(decimal.RequireFromString("75.50")))
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	_, err := models.UpdateTransaction(models.DB, 4096, models.Transaction{
		Description: "Teste",
		Amount:      decimal.RequireFromString("10.00"),
		Type:        models.TypeExpense,
	})
	assert.ErrorIs(suite.T(), err, models.ErrTransactionNotFound)
}

// TestUpdateTransactionKeepsStoredOnFailure verifies that a rejected update
// leaves the stored transaction untouched.
func (suite *TestSuiteStandard) TestUpdateTransactionKeepsStoredOnFailure() {
	person := suite.createTestPerson(models.Person{Age: 30})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Original",
		Amount:      decimal.RequireFromString("50.00"),
		Type:        models.TypeExpense,
		PersonID:    person.ID,
		CategoryID:  category.ID,
	})

	_, err := models.UpdateTransaction(models.DB, transaction.ID, models.Transaction{
		Description: "Alterada",
		Amount:      decimal.RequireFromString("99.99"),
		Type:        models.TypeExpense,
		PersonID:    person.ID,
		CategoryID:  4096,
	})
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNotFound)

	var stored models.Transaction
	require.Nil(suite.T(), models.DB.First(&stored, transaction.ID).Error)
	assert.Equal(suite.T(), "Original", stored.Description)
	assert.True(suite.T(), stored.Amount.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(suite.T(), category.ID, stored.CategoryID)
}

// TestUpdateTransactionRevalidatesUnchangedFields verifies that the full
// merged transaction is validated, not only changed fields: switching the
// type to income has to be checked against the age of the current person.
func (suite *TestSuiteStandard) TestUpdateTransactionRevalidatesUnchangedFields() {
	minor := suite.createTestPerson(models.Person{Age: 15})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Lanche",
		Amount:      decimal.RequireFromString("12.00"),
		Type:        models.TypeExpense,
		PersonID:    minor.ID,
		CategoryID:  category.ID,
	})

	_, err := models.UpdateTransaction(models.DB, transaction.ID, models.Transaction{
		Description: "Lanche",
		Amount:      decimal.RequireFromString("12.00"),
		Type:        models.TypeIncome,
		PersonID:    minor.ID,
		CategoryID:  category.ID,
	})
	assert.ErrorIs(suite.T(), err, models.ErrMinorIncome)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	person := suite.createTestPerson(models.Person{Age: 30})
	category := suite.createTestCategory(models.Category{Purpose: models.PurposeBoth})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:     decimal.RequireFromString("10.00"),
		Type:       models.TypeExpense,
		PersonID:   person.ID,
		CategoryID: category.ID,
	})

	require.Nil(suite.T(), models.DeleteTransaction(models.DB, transaction.ID))

	// Deleting a transaction has no cascade effects
	var people, categories int64
	models.DB.Model(&models.Person{}).Count(&people)
	models.DB.Model(&models.Category{}).Count(&categories)
	assert.Equal(suite.T(), int64(1), people)
	assert.Equal(suite.T(), int64(1), categories)

	err := models.DeleteTransaction(models.DB, transaction.ID)
	assert.ErrorIs(suite.T(), err, models.ErrTransactionNotFound)
}
