package cmd

import (
	"bytes"
	"testing"

	"github.com/justbidit/jbi/internal"
	"github.com/justbidit/jbi/testutil"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_RegistersFlows(t *testing.T) {
	want := []string{
		"login", "register", "logout", "whoami",
		"upload", "tenders", "company", "check", "report",
		"draft", "ask", "chat", "export", "healthcheck",
	}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestRequireLogin(t *testing.T) {
	store := internal.NewStore(testutil.CreateTempDir(t))
	if err := requireLogin(store); err == nil {
		t.Error("requireLogin() passed without a token")
	}

	store.Token = "tok-123"
	if err := requireLogin(store); err != nil {
		t.Errorf("requireLogin() error = %v with a token present", err)
	}
}

func TestTenderIDNum(t *testing.T) {
	store := internal.NewStore(testutil.CreateTempDir(t))

	if got := tenderIDNum(store); got != 0 {
		t.Errorf("tenderIDNum() = %d with no active tender, want 0", got)
	}

	store.TenderID = "7"
	if got := tenderIDNum(store); got != 7 {
		t.Errorf("tenderIDNum() = %d, want 7", got)
	}

	store.TenderID = "not-a-number"
	if got := tenderIDNum(store); got != 0 {
		t.Errorf("tenderIDNum() = %d for garbage input, want 0", got)
	}
}

func TestProtectedCommandsRefuseWithoutLogin(t *testing.T) {
	stateDir := testutil.CreateTempDir(t)

	tests := [][]string{
		{"upload", "tender.pdf"},
		{"check"},
		{"draft"},
		{"ask", "am I eligible?"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			full := append(append([]string{}, args...), "--state", stateDir)
			rootCmd.SetArgs(full)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			if err := rootCmd.Execute(); err == nil {
				t.Errorf("%v succeeded without a login", args)
			}
		})
	}
}
