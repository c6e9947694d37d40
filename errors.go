package taguchi

import "errors"

// Sentinel ValidationError causes (§7). Returned wrapped via fmt.Errorf so
// callers can still match with errors.Is.
var (
	// ErrNoFactors is returned when an ExperimentDefinition has zero factors.
	ErrNoFactors = errors.New("taguchi: experiment definition has no factors")

	// ErrTooManyFactors is returned when factor count exceeds the 41-factor bound.
	ErrTooManyFactors = errors.New("taguchi: too many factors (max 41)")

	// ErrFactorNameEmpty is returned for a factor with a blank name.
	ErrFactorNameEmpty = errors.New("taguchi: factor name is empty")

	// ErrFactorNameTooLong is returned when a factor name exceeds 63 bytes.
	ErrFactorNameTooLong = errors.New("taguchi: factor name exceeds 63 bytes")

	// ErrFactorLevelCount is returned when a factor does not have between 2
	// and 27 levels.
	ErrFactorLevelCount = errors.New("taguchi: factor must have between 2 and 27 levels")

	// ErrLevelValueTooLong is returned when a level value exceeds 127 bytes.
	ErrLevelValueTooLong = errors.New("taguchi: level value exceeds 127 bytes")

	// ErrLevelValueEmpty is returned for a blank level value.
	ErrLevelValueEmpty = errors.New("taguchi: level value is empty")

	// ErrDuplicateFactorName is returned when two factors share a name.
	ErrDuplicateFactorName = errors.New("taguchi: duplicate factor name")

	// ErrArrayNameInvalid is returned when an explicit array name does not
	// match ^L[0-9]+$.
	ErrArrayNameInvalid = errors.New("taguchi: array name must match ^L[0-9]+$")
)
