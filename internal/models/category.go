package models

import "strings"

// CategorySet is an ordered list of canonical category names.
type CategorySet []string

// DefaultIncomeCategories returns the built-in income categories.
func DefaultIncomeCategories() CategorySet {
	return CategorySet{CategorySalary, CategoryBusiness}
}

// DefaultExpenseCategories returns the built-in expense categories.
func DefaultExpenseCategories() CategorySet {
	return CategorySet{CategoryFood, CategoryRent, CategoryTravel}
}

// Match returns the canonical spelling of name if it is a member of the set,
// ignoring case. Surrounding whitespace on name is ignored.
func (s CategorySet) Match(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range s {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// String joins the set with "/", as shown in prompts.
func (s CategorySet) String() string {
	return strings.Join(s, "/")
}

// Categories holds the two category sets used for interactive entry.
type Categories struct {
	Income  CategorySet `yaml:"income"`
	Expense CategorySet `yaml:"expense"`
}

// DefaultCategories returns the built-in category sets.
func DefaultCategories() Categories {
	return Categories{
		Income:  DefaultIncomeCategories(),
		Expense: DefaultExpenseCategories(),
	}
}

// For returns the set matching the income flag.
func (c Categories) For(isIncome bool) CategorySet {
	if isIncome {
		return c.Income
	}
	return c.Expense
}
