package models

import (
	"strings"

	"gorm.io/gorm"
)

// Purpose declares which transaction types a category can be used with.
type Purpose string

const (
	PurposeExpense Purpose = "despesa"
	PurposeIncome  Purpose = "receita"
	PurposeBoth    Purpose = "ambas"
)

// Valid reports whether the purpose is one of the known wire tokens.
func (p Purpose) Valid() bool {
	return p == PurposeExpense || p == PurposeIncome || p == PurposeBoth
}

// Category represents a spending or income category.
type Category struct {
	Model
	Description string  `json:"descricao"`
	Purpose     Purpose `json:"finalidade"`

	Transactions []Transaction `json:"-"`
}

// BeforeSave trims and checks the fields that every Category needs to have.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Description = strings.TrimSpace(c.Description)
	if c.Description == "" {
		return ErrDescriptionMissing
	}

	if !c.Purpose.Valid() {
		return ErrInvalidPurpose
	}

	return nil
}

// Categories returns all categories.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Find(&categories).Error
	return categories, err
}

// CreateCategory stores a new category.
func CreateCategory(db *gorm.DB, category Category) (Category, error) {
	err := db.Create(&category).Error
	return category, err
}

// UpdateCategory overwrites the editable fields of the category with the ID.
func UpdateCategory(db *gorm.DB, id uint64, input Category) (Category, error) {
	var category Category
	err := db.First(&category, id).Error
	if err != nil {
		return Category{}, err
	}

	category.Description = input.Description
	category.Purpose = input.Purpose

	err = db.Save(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// DeleteCategory deletes the category with the ID together with all
// transactions referencing it, in a single database transaction.
func DeleteCategory(db *gorm.DB, id uint64) error {
	var category Category
	err := db.First(&category, id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Transaction{CategoryID: category.ID}).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
