package rectangle

// Export private helpers for white-box tests.
var (
	PrincipalAxes = principalAxes
	FitError      = fitError
)
