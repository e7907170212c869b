// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling and
// messaging. User-facing error messages are carefully crafted to be
// informative without revealing sensitive implementation details. In
// particular, the password reset messages deliberately do not distinguish
// between the possible failure causes.
package constants

// User-Facing Error Messages define standardized messages that can be safely presented to users.
const (
	// MsgInvalidCredentials indicates that login credentials are incorrect.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates the HTTP method is not supported by the endpoint.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInvalidResetToken is the single message returned for every reset-token
	// failure so that callers cannot tell which condition failed.
	MsgInvalidResetToken = "Invalid or expired token"

	// MsgResetRequested is the generic response to a forgot-password request,
	// returned whether or not the account exists.
	MsgResetRequested = "If an account with that username or email exists, a password reset link has been sent."

	// MsgPasswordChanged confirms a successful password change.
	MsgPasswordChanged = "Password has been reset successfully."

	// MsgUserDeleted confirms a successful account deletion.
	MsgUserDeleted = "Account successfully deleted"

	// MsgBadMonthFormat indicates a month string that is not in YYYY-MM form.
	MsgBadMonthFormat = "Month must be in YYYY-MM format"
)
