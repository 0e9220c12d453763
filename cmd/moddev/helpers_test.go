// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"moddev/internal/config"
	"moddev/internal/testutil"
	"moddev/pkg/types"
)

// stubProvider returns a fixed configuration.
type stubProvider struct {
	cfg  *config.Config
	path string
	err  error
}

func (p stubProvider) Load(context.Context, config.LoadOptions) (*config.Loaded, error) {
	if p.err != nil {
		return nil, p.err
	}
	cfg := p.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &config.Loaded{Config: cfg, Path: p.path}, nil
}

// runCLI executes the command tree with args and captures its output.
func runCLI(t *testing.T, provider config.Provider, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := NewApp(Dependencies{Config: provider, Stdout: &out, Stderr: &errOut})
	root := NewRootCommand(app)
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetArgs(append(args, "--no-color"))

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeMod creates root/<id>/mod.json with the given load order and dependencies.
func writeMod(t *testing.T, root, id string, loadOrder int, deps ...string) string {
	t.Helper()
	return testutil.WriteMod(t, root, testutil.ModFixture{ID: id, LoadOrder: loadOrder, Dependencies: deps})
}

// exitCode extracts the code of an ExitError, failing the test for other errors.
func exitCode(t *testing.T, err error) types.ExitCode {
	t.Helper()

	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	return exitErr.Code
}
