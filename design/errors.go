package design

import "errors"

var (
	// ErrCapacity is returned by SelectArray when no catalog array can
	// accommodate the factor set (§4.3, §7 CapacityError).
	ErrCapacity = errors.New("design: no catalog array fits the factor set")

	// ErrUnknownArray is returned by GenerateRuns when an explicit array
	// name is not in the oa catalog (§7 UnknownArray).
	ErrUnknownArray = errors.New("design: unknown array")

	// ErrColumnOverflow is returned by GenerateRuns when the factors need
	// more columns than the chosen array provides (§4.4, §7 ColumnOverflow).
	ErrColumnOverflow = errors.New("design: factors require more columns than the array provides")
)
