// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// setCleanEnv strips TAILCFG_* overrides so the binary sees only the file under test.
func setCleanEnv(cmd *exec.Cmd) {
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "TAILCFG_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
}

// TestValidateCLI tests the validate binary with various config files
func TestValidateCLI(t *testing.T) {
	// Build the validate binary for testing
	binaryPath := filepath.Join(t.TempDir(), "validate-test")
	// #nosec G204 -- Test code: building test binary with controlled arguments
	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build validate binary: %v\n%s", err, out)
	}

	tests := []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string // substring expected in stdout
		wantStderr string // substring expected in stderr
	}{
		{
			name:       "valid yaml override",
			args:       []string{"-f", "../../internal/config/testdata/override.yaml"},
			wantExit:   0,
			wantStdout: "is valid",
		},
		{
			name:       "valid json",
			args:       []string{"--file", "../../internal/config/testdata/full.json"},
			wantExit:   0,
			wantStdout: "is valid",
		},
		{
			name:       "valid toml standalone",
			args:       []string{"-standalone", "-f", "../../internal/config/testdata/palette.toml"},
			wantExit:   0,
			wantStdout: "is valid",
		},
		{
			name:       "invalid unknown key",
			args:       []string{"-f", "../../internal/config/testdata/unknown_field.yaml"},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
		{
			name:       "invalid color",
			args:       []string{"-f", "../../internal/config/testdata/invalid_color.yaml"},
			wantExit:   1,
			wantStderr: "theme.extend.colors.ink.500",
		},
		{
			name:       "no file flag provided",
			args:       nil,
			wantExit:   2,
			wantStderr: "--file is required",
		},
		{
			name:       "non-existent file",
			args:       []string{"-f", "does-not-exist.yaml"},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
		{
			name:       "version",
			args:       []string{"-version"},
			wantExit:   0,
			wantStdout: "commit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// #nosec G204 -- Test code: running test binary with controlled args
			cmd := exec.Command(binaryPath, tt.args...)
			setCleanEnv(cmd)

			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			exitCode := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run validate: %v", err)
			}

			if exitCode != tt.wantExit {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", exitCode, tt.wantExit, stdout.String(), stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
