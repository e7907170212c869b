// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including table names and column names. These constants ensure consistent
// database access patterns throughout the application, reducing the risk of
// SQL errors and simplifying schema changes.
package constants

// Table Names define the names of database tables used in the application.
const (
	// TableUsers is the name of the table storing user account information.
	TableUsers = "users"

	// TableExpenses is the name of the table storing expense records.
	TableExpenses = "expenses"

	// TableBudgets is the name of the table storing per-category monthly budgets.
	TableBudgets = "budgets"

	// TablePasswordResetTokens is the name of the table storing password reset tokens.
	TablePasswordResetTokens = "password_reset_tokens"
)

// Common Column Names define frequently used database column names.
const (
	// ColumnUserID is the column name for user identifier foreign keys.
	ColumnUserID = "user_id"

	// ColumnUsername is the column name for user usernames.
	ColumnUsername = "username"

	// ColumnEmail is the column name for user email addresses.
	ColumnEmail = "email"

	// ColumnAmount is the column name for monetary amounts.
	ColumnAmount = "amount"

	// ColumnCategory is the column name for expense and budget categories.
	ColumnCategory = "category"

	// ColumnExpenseDate is the column name for the calendar date of an expense.
	ColumnExpenseDate = "expense_date"

	// ColumnMonth is the column name for the YYYY-MM budget month.
	ColumnMonth = "month"
)
