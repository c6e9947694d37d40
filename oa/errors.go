package oa

import "errors"

// ErrUnknownArray is returned by mustHaveDims for a name not in the
// catalog. Lookup and Info report an unknown name with ok == false instead.
var ErrUnknownArray = errors.New("oa: unknown array")
