// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"moddev/internal/issue"
	"moddev/pkg/modfile"
)

// errNoModsFound is the cause of noModsFoundError.
var errNoModsFound = errors.New("no mods found")

// noModsFoundError reports a validate or inspect target without mods.
func noModsFoundError(target string) *issue.ActionableError {
	return issue.NewErrorContext().
		WithOperation("find mods").
		WithResource(target).
		Wrap(errNoModsFound).
		WithSuggestions(
			"Pass a mod directory (containing mod.json) or a directory of mods",
			"Run 'moddev init <mod_id>' to create a new mod",
		).
		WithIssue(issue.NoModsFoundId).
		Build()
}

// configLoadError wraps a configuration failure.
func configLoadError(path string, err error) *issue.ActionableError {
	resource := path
	if resource == "" {
		resource = "configuration"
	}
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(resource).
		WithSuggestion("Run 'moddev config show --config <file>' after fixing the file, or remove it to use defaults").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		Build()
}

// scaffoldError maps a Scaffold failure to actionable guidance.
func scaffoldError(target string, err error) *issue.ActionableError {
	ctx := issue.NewErrorContext().
		WithOperation("create mod scaffold").
		WithResource(target).
		Wrap(err)

	switch {
	case errors.Is(err, modfile.ErrInvalidModID):
		ctx.WithSuggestion("Use only letters, digits, '_' and '-' in the mod id").
			WithIssue(issue.InvalidModIDId)
	case errors.Is(err, modfile.ErrTargetNotEmpty):
		ctx.WithSuggestion("Choose another mod id, or pass --force to write into the existing directory").
			WithIssue(issue.ScaffoldTargetExistsId)
	case errors.Is(err, modfile.ErrUnknownTemplate):
		ctx.WithSuggestion("Use --template lua or --template data").
			WithIssue(issue.UnknownTemplateId)
	}
	return ctx.Build()
}
