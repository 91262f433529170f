package models_test

import (
	"github.com/controle-gastos/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

// TestNotFoundMessages verifies that the query callback replaces the
// generic gorm error with the user-facing message for the entity.
func (suite *TestSuiteStandard) TestNotFoundMessages() {
	err := models.DB.First(&models.Person{}, 4096).Error
	assert.ErrorIs(suite.T(), err, models.ErrPersonNotFound)

	err = models.DB.First(&models.Category{}, 4096).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNotFound)

	err = models.DB.First(&models.Transaction{}, 4096).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionNotFound)
}

// TestGeneralErrorOnClosedDB verifies that database failures are replaced
// with the general error message.
func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.First(&models.Person{}, 1).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
