//go:build unit || e2e

package testutil

import (
	"fmt"
	"testing"

	"slotbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs is assert.ErrorIs for errors tagged with errs.Mark; the standard
// errors.Is does not see those marks.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if errs.Is(err, target) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("expected %q in chain of: %v", target, err), msgAndArgs...)
}
