package analysis

import "errors"

// ErrNoDefinition is returned when a ResultSet's Def back-reference is nil
// — main effects cannot be computed without the experiment that produced
// the runs (§4.6, §9).
var ErrNoDefinition = errors.New("analysis: result set has no experiment definition")
