package models

// People of full age can register both expenses and income, minors are
// limited to expenses.
const fullAge = 18

// Validate checks the business rules for a transaction against the person
// and category it references. The caller passes the currently stored
// records, nil standing for a record that does not exist.
//
// Validate is a pure decision function: it has no side effects and is used
// unchanged for both the create and the update path, always with the full
// proposed state of the transaction.
//
// The checks run in a fixed order and the first failing rule wins:
//
//  1. the person has to exist
//  2. a minor can only register expenses
//  3. the category has to exist
//  4. the transaction type has to be compatible with the category purpose
func (t Transaction) Validate(person *Person, category *Category) error {
	if person == nil {
		return ErrPersonNotFound
	}

	if person.Age < fullAge && t.Type == TypeIncome {
		return ErrMinorIncome
	}

	if category == nil {
		return ErrCategoryNotFound
	}

	// A category with purpose "ambas" accepts both transaction types.
	if (t.Type == TypeExpense && category.Purpose == PurposeIncome) ||
		(t.Type == TypeIncome && category.Purpose == PurposeExpense) {
		return ErrIncompatiblePurpose
	}

	return nil
}
