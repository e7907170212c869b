// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to
// routing and request parameters. These constants ensure consistent API
// patterns and URL structure throughout the application.
package constants

// URL Parameters define path parameter names used in route definitions.
const (
	// ParamUserID is the URL parameter for user identifiers.
	ParamUserID = "userID"

	// ParamExpenseID is the URL parameter for expense identifiers.
	ParamExpenseID = "expenseID"

	// ParamMonth is the URL parameter for YYYY-MM budget months.
	ParamMonth = "month"
)

// Query Parameters define common query string parameter names.
const (
	// QueryParamCategory filters expenses by category.
	QueryParamCategory = "category"

	// QueryParamStartDate filters expenses by inclusive lower date bound.
	QueryParamStartDate = "start_date"

	// QueryParamEndDate filters expenses by inclusive upper date bound.
	QueryParamEndDate = "end_date"

	// QueryParamSortBy selects the expense sort field.
	QueryParamSortBy = "sort_by"

	// QueryParamOrder selects the sort direction (asc or desc).
	QueryParamOrder = "order"

	// QueryParamLimit caps the number of returned expenses.
	QueryParamLimit = "limit"

	// QueryParamMonth selects the month for spending summaries.
	QueryParamMonth = "month"
)
