package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Type is the polarity of a transaction.
type Type string

const (
	TypeExpense Type = "despesa"
	TypeIncome  Type = "receita"
)

// Valid reports whether the type is one of the known wire tokens.
func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction represents a single expense or income of a person.
type Transaction struct {
	Model
	Description string          `json:"descricao"`
	Amount      decimal.Decimal `json:"valor" gorm:"type:DECIMAL(18,2)"`
	Type        Type            `json:"tipo"`
	PersonID    uint64          `json:"pessoaId"`
	Person      Person          `json:"-"`
	CategoryID  uint64          `json:"categoriaId"`
	Category    Category        `json:"-"`
}

// BeforeSave trims and checks the fields that every Transaction needs to
// have. The business rules against the referenced person and category are
// checked by Validate, not here.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return ErrDescriptionMissing
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrInvalidType
	}

	return nil
}

// Transactions returns all transactions.
func Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.Find(&transactions).Error
	return transactions, err
}

// CreateTransaction validates and stores a new transaction. On a rule
// violation nothing is persisted and the rule error is returned.
func CreateTransaction(db *gorm.DB, transaction Transaction) (Transaction, error) {
	person, category, err := references(db, transaction)
	if err != nil {
		return Transaction{}, err
	}

	err = transaction.Validate(person, category)
	if err != nil {
		return Transaction{}, err
	}

	err = db.Create(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// UpdateTransaction overwrites the editable fields of the transaction with
// the ID and re-validates the result in full. The merged candidate has to
// pass all rules against the current person and category, so a transaction
// can not keep an invalid state just because only one field changed. The
// stored transaction stays untouched when validation fails.
func UpdateTransaction(db *gorm.DB, id uint64, input Transaction) (Transaction, error) {
	var transaction Transaction
	err := db.First(&transaction, id).Error
	if err != nil {
		return Transaction{}, err
	}

	transaction.Description = input.Description
	transaction.Amount = input.Amount
	transaction.Type = input.Type
	transaction.PersonID = input.PersonID
	transaction.CategoryID = input.CategoryID

	person, category, err := references(db, transaction)
	if err != nil {
		return Transaction{}, err
	}

	err = transaction.Validate(person, category)
	if err != nil {
		return Transaction{}, err
	}

	err = db.Save(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction deletes the transaction with the ID. Nothing else
// references transactions, so no cascade is needed.
func DeleteTransaction(db *gorm.DB, id uint64) error {
	var transaction Transaction
	err := db.First(&transaction, id).Error
	if err != nil {
		return err
	}

	return db.Delete(&transaction).Error
}

// references looks up the person and category a transaction points to.
// A missing record is returned as nil so that Validate can report it with
// the matching rule error. The returned error is only set for database
// failures, never for missing records.
func references(db *gorm.DB, transaction Transaction) (*Person, *Category, error) {
	var person *Person
	var p Person
	err := db.First(&p, transaction.PersonID).Error
	switch {
	case err == nil:
		person = &p
	case !isRecordNotFound(err):
		return nil, nil, err
	}

	var category *Category
	var c Category
	err = db.First(&c, transaction.CategoryID).Error
	switch {
	case err == nil:
		category = &c
	case !isRecordNotFound(err):
		return nil, nil, err
	}

	return person, category, nil
}

// isRecordNotFound also matches the user-facing errors the query callback
// substitutes for gorm.ErrRecordNotFound.
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || IsNotFound(err)
}
