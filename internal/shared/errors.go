package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrNoFormats     = fmt.Errorf("no allowed formats selected")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// External tool errors
	ErrToolNotFound  = fmt.Errorf("external tool not found")
	ErrOutputMissing = fmt.Errorf("expected output file absent")

	// Run state
	ErrAborted = fmt.Errorf("aborted by user")
)
