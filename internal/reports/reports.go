// Package reports computes the income, expense and balance totals per
// person and per category.
//
// The totals are computed entirely in memory over the transaction sets the
// caller hands in, independent of the aggregate capabilities of the storage
// engine. All arithmetic uses decimal values so that repeated aggregation
// never accumulates binary floating point drift.
package reports

import (
	"github.com/controle-gastos/backend/internal/models"
	"github.com/shopspring/decimal"
)

// PersonTotals are the totals for all transactions of one person.
type PersonTotals struct {
	PersonID uint64          `json:"pessoaId"`
	Person   string          `json:"pessoa"`
	Income   decimal.Decimal `json:"receitas"`
	Expense  decimal.Decimal `json:"despesas"`
	Balance  decimal.Decimal `json:"saldo"`
}

// CategoryTotals are the totals for all transactions of one category.
type CategoryTotals struct {
	CategoryID uint64          `json:"categoriaId"`
	Category   string          `json:"categoria"`
	Income     decimal.Decimal `json:"receitas"`
	Expense    decimal.Decimal `json:"despesas"`
	Balance    decimal.Decimal `json:"saldo"`
}

// OverallTotals are the totals over all groups of a report.
type OverallTotals struct {
	Income  decimal.Decimal `json:"totalReceitas"`
	Expense decimal.Decimal `json:"totalDespesas"`
	Balance decimal.Decimal `json:"saldo"`
}

// PersonReport is the report of totals grouped by person.
type PersonReport struct {
	Details []PersonTotals `json:"detalhes"`
	Overall OverallTotals  `json:"totalGeral"`
}

// CategoryReport is the report of totals grouped by category.
type CategoryReport struct {
	Details []CategoryTotals `json:"detalhes"`
	Overall OverallTotals    `json:"totalGeral"`
}

// ByPerson aggregates the transactions of each person. Every person gets a
// row, people without transactions with all totals at zero. The overall
// totals are the sums of the per-person rows, so the overall balance always
// equals overall income minus overall expense.
func ByPerson(people []models.Person) PersonReport {
	report := PersonReport{
		Details: make([]PersonTotals, 0, len(people)),
	}

	for _, person := range people {
		income, expense := sum(person.Transactions)

		totals := PersonTotals{
			PersonID: person.ID,
			Person:   person.Name,
			Income:   income,
			Expense:  expense,
			Balance:  income.Sub(expense),
		}

		report.Details = append(report.Details, totals)
		report.Overall = report.Overall.add(totals.Income, totals.Expense, totals.Balance)
	}

	return report
}

// ByCategory aggregates the transactions of each category, symmetrically
// to ByPerson.
func ByCategory(categories []models.Category) CategoryReport {
	report := CategoryReport{
		Details: make([]CategoryTotals, 0, len(categories)),
	}

	for _, category := range categories {
		income, expense := sum(category.Transactions)

		totals := CategoryTotals{
			CategoryID: category.ID,
			Category:   category.Description,
			Income:     income,
			Expense:    expense,
			Balance:    income.Sub(expense),
		}

		report.Details = append(report.Details, totals)
		report.Overall = report.Overall.add(totals.Income, totals.Expense, totals.Balance)
	}

	return report
}

// sum adds up the amounts of one group of transactions by type.
func sum(transactions []models.Transaction) (income, expense decimal.Decimal) {
	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TypeIncome:
			income = income.Add(transaction.Amount)
		case models.TypeExpense:
			expense = expense.Add(transaction.Amount)
		}
	}

	return income, expense
}

// add adds the already computed totals of one group to the overall totals.
func (o OverallTotals) add(income, expense, balance decimal.Decimal) OverallTotals {
	return OverallTotals{
		Income:  o.Income.Add(income),
		Expense: o.Expense.Add(expense),
		Balance: o.Balance.Add(balance),
	}
}
