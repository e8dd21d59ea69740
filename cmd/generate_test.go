package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mathsinbites/bitesmith/internal/store"
)

func TestGenerateUnknownTopicID(t *testing.T) {
	t.Setenv("BITESMITH_GEN_URL", "http://127.0.0.1:1")

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	rootCmd.SetArgs([]string{"generate", "--topic", "does-not-exist", "--db", dbPath})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}
