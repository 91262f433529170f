package models

import (
	"strings"

	"gorm.io/gorm"
)

// Person represents a resident who owns transactions.
type Person struct {
	Model
	Name string `json:"nome"`
	Age  uint   `json:"idade"`

	// Transactions are always referenced by ID on the wire, never nested,
	// so that a Person does not serialize its transactions and vice versa.
	Transactions []Transaction `json:"-"`
}

// BeforeSave trims and checks the fields that every Person needs to have.
func (p *Person) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrNameMissing
	}

	return nil
}

// People returns all people.
func People(db *gorm.DB) ([]Person, error) {
	var people []Person
	err := db.Find(&people).Error
	return people, err
}

// CreatePerson stores a new person.
func CreatePerson(db *gorm.DB, person Person) (Person, error) {
	err := db.Create(&person).Error
	return person, err
}

// UpdatePerson overwrites the editable fields of the person with the ID.
func UpdatePerson(db *gorm.DB, id uint64, input Person) (Person, error) {
	var person Person
	err := db.First(&person, id).Error
	if err != nil {
		return Person{}, err
	}

	person.Name = input.Name
	person.Age = input.Age

	err = db.Save(&person).Error
	if err != nil {
		return Person{}, err
	}

	return person, nil
}

// DeletePerson deletes the person with the ID together with all their
// transactions. Both deletes happen in a single database transaction so
// that readers never observe a person without their transactions or
// orphaned transactions without their person.
func DeletePerson(db *gorm.DB, id uint64) error {
	var person Person
	err := db.First(&person, id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Transaction{PersonID: person.ID}).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&person).Error
	})
}
