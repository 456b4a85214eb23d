// Package reports holds the report computation core: filtering, grouping
// and assembly over in-memory snapshots of the shop's collections.
// Every function is pure and order-preserving; caller-owned slices are
// never mutated.
package reports

import (
	"time"

	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"
)

// LargeExpenseThreshold is the fixed cutoff for the only-large-expenses
// toggle on expense reports
const LargeExpenseThreshold = 1000.0

// Filters is one report's predicate set. Nil pointers mean the dimension
// is unconstrained; a non-nil pointer to zero is a real bound.
type Filters struct {
	DateFrom          *time.Time
	DateTo            *time.Time
	MinAmount         *float64
	MaxAmount         *float64
	OperationType     string
	PaymentMethod     string
	ExpenseCategory   string
	TeacherIDs        []int // nil = all teachers
	OnlyLargeExpenses bool
}

// FiltersFromConfig extracts the record-level predicates of a ReportConfig
func FiltersFromConfig(cfg models.ReportConfig) Filters {
	return Filters{
		DateFrom:          cfg.DateFrom,
		DateTo:            cfg.DateTo,
		MinAmount:         cfg.MinAmount,
		MaxAmount:         cfg.MaxAmount,
		OperationType:     cfg.OperationType,
		PaymentMethod:     cfg.PaymentMethod,
		ExpenseCategory:   cfg.ExpenseCategory,
		TeacherIDs:        cfg.SelectedTeachers,
		OnlyLargeExpenses: cfg.OnlyLargeExpenses,
	}
}

// inDateRange checks an inclusive range: start of the from-day through the
// end of the to-day, in the shop timezone. Absent bounds do not constrain.
func (f Filters) inDateRange(d time.Time) bool {
	if f.DateFrom != nil && d.Before(timeutil.StartOfDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && d.After(timeutil.EndOfDay(*f.DateTo)) {
		return false
	}
	return true
}

func (f Filters) inAmountRange(amount float64) bool {
	if f.MinAmount != nil && amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && amount > *f.MaxAmount {
		return false
	}
	return true
}

func (f Filters) teacherSelected(teacherID int) bool {
	if f.TeacherIDs == nil {
		return true
	}
	for _, id := range f.TeacherIDs {
		if id == teacherID {
			return true
		}
	}
	return false
}

// FilterOperations returns the operations matching every configured
// predicate, preserving input order
func FilterOperations(operations []*models.Operation, f Filters) []*models.Operation {
	var out []*models.Operation
	for _, op := range operations {
		if !f.teacherSelected(op.TeacherID) {
			continue
		}
		if !f.inDateRange(op.OperationDate) {
			continue
		}
		if !f.inAmountRange(op.Amount) {
			continue
		}
		if f.OperationType != "" && string(op.Type) != f.OperationType {
			continue
		}
		out = append(out, op)
	}
	return out
}

// FilterPayments returns the payments matching every configured predicate,
// preserving input order
func FilterPayments(payments []*models.Payment, f Filters) []*models.Payment {
	var out []*models.Payment
	for _, p := range payments {
		if !f.teacherSelected(p.TeacherID) {
			continue
		}
		if !f.inDateRange(p.PaymentDate) {
			continue
		}
		if !f.inAmountRange(p.Amount) {
			continue
		}
		if f.PaymentMethod != "" && string(p.PaymentMethod) != f.PaymentMethod {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterExpenses returns the expenses matching every configured predicate,
// preserving input order. Teacher membership never applies: expenses are
// shop overhead.
func FilterExpenses(expenses []*models.Expense, f Filters) []*models.Expense {
	var out []*models.Expense
	for _, e := range expenses {
		if !f.inDateRange(e.ExpenseDate) {
			continue
		}
		if !f.inAmountRange(e.Amount) {
			continue
		}
		if f.ExpenseCategory != "" && string(e.Type) != f.ExpenseCategory && e.Category != f.ExpenseCategory {
			continue
		}
		if f.PaymentMethod != "" && string(e.PaymentMethod) != f.PaymentMethod {
			continue
		}
		if f.OnlyLargeExpenses && e.Amount <= LargeExpenseThreshold {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTeachers keeps the teachers whose id is in the selection,
// preserving input order. A nil selection keeps everyone; an empty
// non-nil selection keeps no one (the caller decides what that means).
func FilterTeachers(teachers []*models.Teacher, selected []int) []*models.Teacher {
	if selected == nil {
		out := make([]*models.Teacher, len(teachers))
		copy(out, teachers)
		return out
	}
	member := make(map[int]bool, len(selected))
	for _, id := range selected {
		member[id] = true
	}
	var out []*models.Teacher
	for _, t := range teachers {
		if member[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
