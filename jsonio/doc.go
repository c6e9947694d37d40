// Package jsonio serializes runs and main effects to the JSON wire
// formats of §6.4 and §6.5.
//
// Effects (§6.5) have a static, fixed schema and are marshaled with
// github.com/goccy/go-json, the fast drop-in encoder from the module's
// domain stack. Runs (§6.4) have a dynamic schema — each run's object has
// one key per factor, and Go's encoding/json (and goccy/go-json, which
// matches its map-key behavior) always emits map keys sorted
// alphabetically, which would violate §6.4's "keys preserve factor
// insertion order" rule. That ordering requirement is hand-rolled here
// instead (see DESIGN.md).
package jsonio
