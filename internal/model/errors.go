package model

import "errors"

// Sentinel errors for programmatic checking. Only configuration-level
// problems abort a run; per-file failures are downgraded to data.
var (
	ErrNoRoots      = errors.New("no readable roots")
	ErrEmptyRuleSet = errors.New("empty rule set")
	ErrRunFailures  = errors.New("one or more files failed")
)

// ErrorCode provides a machine-readable error type for results.
type ErrorCode string

const (
	ECNone        ErrorCode = ""
	ECReadError   ErrorCode = "ERR_READ_FILE"
	ECWriteError  ErrorCode = "ERR_WRITE_FILE"
	ECConfigError ErrorCode = "ERR_CONFIG"
	ECUnknown     ErrorCode = "ERR_UNKNOWN"
)
