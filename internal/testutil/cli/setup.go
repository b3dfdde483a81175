package cli

import (
	"testing"

	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/store"
	"github.com/ocluk/caolan/internal/testutil"
)

// SetupCLITest opens a temp-dir store and returns it with an App around it.
// This lives in its own package to keep cobra out of testutil.
func SetupCLITest(t *testing.T) (*store.RecordStore, *app.App) {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// CreateTestDetail wraps testutil.CreateTestDetail for CLI tests
func CreateTestDetail(t *testing.T, s *store.RecordStore, name, address, dob, telephone string) int64 {
	t.Helper()
	return testutil.CreateTestDetail(t, s, name, address, dob, telephone)
}
