package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/justbidit/jbi/internal"
	"github.com/justbidit/jbi/testutil"
)

func TestExportCommand_NoTenderSelected(t *testing.T) {
	stateDir := testutil.CreateTempDir(t)

	rootCmd.SetArgs([]string{"export", "--state", stateDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("export succeeded without an active tender")
	}
}

func TestExportCommand_UnsupportedFormat(t *testing.T) {
	stateDir := testutil.CreateTempDir(t)
	store := internal.NewStore(stateDir)
	if err := store.SetTenderID("7"); err != nil {
		t.Fatalf("SetTenderID() error = %v", err)
	}

	rootCmd.SetArgs([]string{"export", "--format", "pdf", "--state", stateDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("export accepted an unsupported format")
	}
}

func TestExportCommand_WritesCachedDraft(t *testing.T) {
	stateDir := testutil.CreateTempDir(t)
	store := internal.NewStore(stateDir)
	if err := store.SetTenderID("7"); err != nil {
		t.Fatalf("SetTenderID() error = %v", err)
	}

	cache, err := internal.OpenActivityCache(stateDir)
	if err != nil {
		t.Fatalf("OpenActivityCache() error = %v", err)
	}
	if err := cache.PutDraft(7, "Respected Sir/Madam,"); err != nil {
		t.Fatalf("PutDraft() error = %v", err)
	}
	_ = cache.Close()

	out := filepath.Join(testutil.CreateTempDir(t), "proposal.txt")
	rootCmd.SetArgs([]string{"export", "--format", "txt", "--out", out, "--state", stateDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if string(data) != "Respected Sir/Madam," {
		t.Errorf("exported draft = %q", string(data))
	}
}

func TestExportCommand_EmptyCache(t *testing.T) {
	stateDir := testutil.CreateTempDir(t)
	store := internal.NewStore(stateDir)
	if err := store.SetTenderID("7"); err != nil {
		t.Fatalf("SetTenderID() error = %v", err)
	}

	rootCmd.SetArgs([]string{"export", "--state", stateDir})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("export succeeded with nothing cached for the tender")
	}
}
