package domain

import "fmt"

// ConfigError reports a missing or malformed configuration input such as a
// policy pack or a stored snapshot. It is fatal: commands abort before any
// analysis runs.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DiffError reports a revision reference the version-control layer could not
// resolve. Fatal for the invoking command only.
type DiffError struct {
	Ref string
	Err error
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("resolving revision %q: %v", e.Ref, e.Err)
}

func (e *DiffError) Unwrap() error { return e.Err }

// CollectionFailure records one gap-signal source that could not be reached.
// Non-fatal: the source contributes an empty list and the failure is carried
// into the final report as a caveat.
type CollectionFailure struct {
	Collector string
	Source    GapSource
	Err       error
}

func (e *CollectionFailure) Error() string {
	return fmt.Sprintf("collector %s (%s): %v", e.Collector, e.Source, e.Err)
}

func (e *CollectionFailure) Unwrap() error { return e.Err }
