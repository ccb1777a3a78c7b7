package controller

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/sbudget/internal/logging"
	"github.com/theirongolddev/sbudget/internal/model"
)

// BudgetController mutates income and the expense list.
type BudgetController struct {
	s *Session
}

// parsePositive reads a form value and accepts only positive finite numbers.
func parsePositive(input string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// AddExpense appends an expense stamped with the current time.
// A blank category becomes "Miscellaneous".
func (c *BudgetController) AddExpense(amountInput, categoryInput string) error {
	amount, ok := parsePositive(amountInput)
	if !ok {
		c.s.prompt.Alert(AlertInvalidAmount)
		return ErrInvalidAmount
	}

	rec := model.ExpenseRecord{
		Amount:    amount,
		Category:  model.NormalizeCategory(categoryInput),
		// Millisecond precision matches what storage keeps.
		Timestamp: c.s.now().Round(0).Truncate(time.Millisecond),
	}

	c.s.budget.Expenses = append(c.s.budget.Expenses, rec)
	c.s.log.WithFields(logrus.Fields{
		logging.FieldAmount:   rec.Amount,
		logging.FieldCategory: rec.Category,
	}).Debug("expense added")

	return c.s.commitBudget("add")
}

// RemoveExpense deletes the expense at index, counted in entry order.
// An index that no longer exists is ignored.
func (c *BudgetController) RemoveExpense(index int) error {
	if index < 0 || index >= len(c.s.budget.Expenses) {
		c.s.log.WithField(logging.FieldIndex, index).Debug("remove ignored, index out of range")
		return nil
	}

	c.s.budget.Expenses = append(c.s.budget.Expenses[:index], c.s.budget.Expenses[index+1:]...)
	return c.s.commitBudget("remove")
}

// SetIncome replaces the income figure.
func (c *BudgetController) SetIncome(input string) error {
	v, ok := parsePositive(input)
	if !ok {
		c.s.prompt.Alert(AlertInvalidIncome)
		return ErrInvalidIncome
	}

	c.s.budget.Income = v
	return c.s.commitBudget("income")
}

// Undo removes the most recently added expense.
func (c *BudgetController) Undo() error {
	n := len(c.s.budget.Expenses)
	if n == 0 {
		return nil
	}
	c.s.budget.Expenses = c.s.budget.Expenses[:n-1]
	return c.s.commitBudget("undo")
}

// ClearAll wipes income and expenses once the user confirms.
// It reports whether anything was cleared.
func (c *BudgetController) ClearAll() (bool, error) {
	if !c.s.prompt.Confirm(ConfirmClearAll) {
		return false, nil
	}

	c.s.budget = model.BudgetState{}
	return true, c.s.commitBudget("clear")
}
