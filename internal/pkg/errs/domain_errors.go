package errs

import "errors"

// Sentinel errors shared by the query use cases and handlers
var (
	// Input errors
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidLimit = errors.New("invalid limit")

	// Query errors
	ErrAvailabilityQueryFailed = errors.New("availability query failed")
	ErrStatisticsQueryFailed   = errors.New("statistics query failed")

	ErrCacheOperationFailed = errors.New("cache operation failed")
)
