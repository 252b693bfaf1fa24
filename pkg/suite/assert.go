package suite

import "fmt"

// CheckError is returned when a scenario check fails. It names the
// expectation so the report reads like the manual test case it mirrors.
type CheckError struct {
	Check string
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("check failed: %s", e.Check)
}

// Expect returns a CheckError when ok is false. Scenarios use it to turn
// visibility probes into reportable failures.
func Expect(ok bool, check string) error {
	if ok {
		return nil
	}
	return &CheckError{Check: check}
}
