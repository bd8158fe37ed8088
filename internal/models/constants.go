package models

// Transaction kinds
const (
	TransactionKindIncome  = "INCOME"
	TransactionKindExpense = "EXPENSE"
)

// Default income categories
const (
	CategorySalary   = "Salary"
	CategoryBusiness = "Business"
)

// Default expense categories
const (
	CategoryFood   = "Food"
	CategoryRent   = "Rent"
	CategoryTravel = "Travel"
)

// File permissions
const (
	PermissionDataFile  = 0644
	PermissionDirectory = 0750
)
