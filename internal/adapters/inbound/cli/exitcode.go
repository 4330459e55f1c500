package cli

import "errors"

// Exit codes follow the CI contract: 1 means a governance check failed on a
// healthy invocation, 2 means the invocation itself was broken (bad policy
// pack, unresolvable revision, unreadable input).
const (
	ExitOK           = 0
	ExitPolicyFailed = 1
	ExitError        = 2
)

// ExitCode maps an Execute error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrPolicyFailed):
		return ExitPolicyFailed
	default:
		return ExitError
	}
}
