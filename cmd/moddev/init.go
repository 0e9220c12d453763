// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"moddev/pkg/modfile"
	"moddev/pkg/types"

	"github.com/spf13/cobra"
)

type initFlagValues struct {
	root     string
	template string
	force    bool
}

// newInitCommand creates the `moddev init` command.
func newInitCommand(app *App) *cobra.Command {
	flags := &initFlagValues{}

	cmd := &cobra.Command{
		Use:   "init <mod_id>",
		Short: "Create a new mod",
		Long: `Create a new mod directory that passes validation.

Templates:
  lua    manifest, content directory and a Lua entry script with one hook
  data   manifest and a content directory with one sample tarot

The mod is created at <root>/<mod_id>. A non-empty target is refused unless
--force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "mods root to create the mod in (default from config)")
	cmd.Flags().StringVarP(&flags.template, "template", "t", string(modfile.TemplateLua), "template to use (lua, data)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "write into a non-empty target directory")

	return cmd
}

func runInit(cmd *cobra.Command, app *App, flags *initFlagValues, modID string) error {
	root := flags.root
	if root == "" {
		root = app.cfg.ModsRoot
	}

	tmpl, err := modfile.ParseTemplate(flags.template)
	if err != nil {
		return &ExitError{Code: types.ExitUsage, Err: scaffoldError(modID, err)}
	}

	modDir, err := modfile.Scaffold(modfile.ScaffoldOptions{
		Root:     root,
		ModID:    modID,
		Template: tmpl,
		Force:    flags.force,
	})
	if err != nil {
		return &ExitError{Code: types.ExitUsage, Err: scaffoldError(modID, err)}
	}
	app.logger.Debug("scaffold created", "dir", modDir, "template", tmpl)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s created mod scaffold: %s\n", SuccessStyle.Render("✓"), modDir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintf(out, "  1. Run '%s' to check the new mod\n", CmdStyle.Render("moddev validate "+modDir))
	fmt.Fprintf(out, "  2. Edit %s and add content files under content/\n", modfile.ManifestFile)

	return nil
}
