package mapping

import (
	"time"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID:       d.ExpenseID,
		TripID:          d.TripID,
		Amount:          d.Amount,
		LocalCurrency:   string(d.LocalCurrency),
		ConvertedAmount: d.ConvertedAmount,
		Category:        string(d.Category),
		Note:            d.Note,
		ExpenseDateNs:   d.Date.UnixNano(),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.RatesAsOf != nil {
		ns := d.RatesAsOf.UnixNano()
		m.RatesAsOfNs = &ns
	}
	return m
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:       m.ExpenseID,
		TripID:          m.TripID,
		Amount:          m.Amount,
		LocalCurrency:   domain.CurrencyCode(m.LocalCurrency),
		ConvertedAmount: m.ConvertedAmount,
		Category:        domain.Category(m.Category),
		Note:            m.Note,
		Date:            time.Unix(0, m.ExpenseDateNs).UTC(),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.RatesAsOfNs != nil {
		asOf := time.Unix(0, *m.RatesAsOfNs).UTC()
		d.RatesAsOf = &asOf
	}
	return d
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
