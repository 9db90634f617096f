package errors

import "net/http"

var (
	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCatalogEntryNotFound = New(
		"CATALOG_ENTRY_NOT_FOUND",
		"Catalog entry not found",
		http.StatusNotFound,
	)

	ErrAnalysisNotFound = New(
		"ANALYSIS_NOT_FOUND",
		"Analysis not found",
		http.StatusNotFound,
	)

	ErrGeocoderUnavailable = New(
		"GEOCODER_UNAVAILABLE",
		"Geocoding service is unavailable",
		http.StatusBadGateway,
	)

	ErrAnalysisTimeout = New(
		"ANALYSIS_TIMEOUT",
		"Site analysis did not finish in time",
		http.StatusGatewayTimeout,
	)

	ErrSelectionSuperseded = New(
		"SELECTION_SUPERSEDED",
		"Selection was replaced by a newer one",
		http.StatusConflict,
	)

	ErrHistoryDisabled = New(
		"HISTORY_DISABLED",
		"Analysis history is not enabled",
		http.StatusNotImplemented,
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
