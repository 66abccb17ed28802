package policy

import "errors"

var (
	// ErrPolicyNotFound is returned when the provider has no stored policy
	ErrPolicyNotFound = errors.New("policy.repository: policy not found")

	// ErrBuildQuery is returned when building a SQL statement fails
	ErrBuildQuery = errors.New("policy.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails
	ErrExecQuery = errors.New("policy.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("policy.repository: failed to scan row")
)
