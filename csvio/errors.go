package csvio

import "errors"

// ErrMalformedRow is returned for a data row whose run_id or response
// column cannot be parsed as a positive integer / IEEE-754 double (§6.2).
var ErrMalformedRow = errors.New("csvio: malformed row")
