package errors

import "net/http"

var (
	ErrGardenNotFound = New(
		"GARDEN_NOT_FOUND",
		"Garden not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidKidsCount = New(
		"INVALID_KIDS_COUNT",
		"Invalid kidsCount value provided. Must be a non-negative number.",
		http.StatusBadRequest,
	)

	ErrMissingFilterName = New(
		"MISSING_FILTER_NAME",
		"Filter name is required.",
		http.StatusBadRequest,
	)

	ErrMissingPrompt = New(
		"MISSING_PROMPT",
		"Prompt is required.",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidSecretCode = New(
		"INVALID_SECRET_CODE",
		"Invalid secret code",
		http.StatusForbidden,
	)

	ErrAdminExists = New(
		"ADMIN_EXISTS",
		"Admin with this email already exists",
		http.StatusConflict,
	)

	ErrAdminNotFound = New(
		"ADMIN_NOT_FOUND",
		"Admin not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		http.StatusBadRequest,
	)

	ErrMissingToken = New(
		"MISSING_TOKEN",
		"Authentication token required",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid or expired token",
		http.StatusForbidden,
	)

	ErrInsightUpstream = New(
		"INSIGHT_UPSTREAM_ERROR",
		"Error generating insight",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
