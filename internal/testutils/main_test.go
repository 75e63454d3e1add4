//go:build integration
// +build integration

package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain runs before all tests and ensures proper cleanup
func TestMain(m *testing.M) {
	// Set up signal handling for graceful cleanup on interruption (Ctrl+C)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received interrupt signal, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	CleanupSharedContainer()
	os.Exit(code)
}

func TestSharedContainerMigratesSchema(t *testing.T) {
	RunWithTestSuite(t, func(s *BaseTestSuite) {
		m := s.DB.Migrator()
		for _, table := range []string{"users", "shifts", "patterns", "pattern_assignments", "shift_assignments"} {
			if !m.HasTable(table) {
				t.Fatalf("table %s was not migrated", table)
			}
		}
	})
}
