package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/store"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	return store.New(t.TempDir(), testLogger())
}

// fixedClock returns a clock function pinned to the given instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
