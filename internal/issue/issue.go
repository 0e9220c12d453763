// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	NoModsFoundId Id = iota + 1
	InvalidModIDId
	ScaffoldTargetExistsId
	UnknownTemplateId
	ConfigLoadFailedId
	ValidationFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render returns the issue as terminal-styled markdown. stylePath is a glamour
// style name or path; an empty value selects "auto".
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range slices.Concat(i.docLinks, i.extLinks) {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	if stylePath == "" {
		stylePath = "auto"
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	noModsFoundIssue = &Issue{
		id: NoModsFoundId,
		mdMsg: `
# No mods found!

The path is neither a mod directory nor a mods root containing mods.

## What counts as a mod
A directory with a ` + "`mod.json`" + ` manifest at its top level. A mods root is a
directory whose immediate subdirectories are mods.

## Things you can try:
- Point the command at a mod or a mods root:
~~~
$ moddev validate mods/my_mod
$ moddev validate mods
~~~

- Create a new mod:
~~~
$ moddev init my_mod
~~~

- Set the default mods root in your config file:
~~~cue
mods_root: "path/to/mods"
~~~`,
	}

	invalidModIDIssue = &Issue{
		id: InvalidModIDId,
		mdMsg: `
# Invalid mod id!

Mod ids name both the mod and its directory, so they are restricted to
letters, digits, underscores and hyphens (` + "`[A-Za-z0-9_-]+`" + `).

## Things you can try:
- Replace spaces and punctuation with underscores:
~~~
$ moddev init lucky_charm
~~~`,
	}

	scaffoldTargetExistsIssue = &Issue{
		id: ScaffoldTargetExistsId,
		mdMsg: `
# Target directory is not empty!

A directory with this mod id already exists and contains files. Scaffolding
would overwrite ` + "`mod.json`" + ` and the template files.

## Things you can try:
- Pick a different mod id
- Use a different mods root with ` + "`--root`" + `
- Overwrite the template files on purpose:
~~~
$ moddev init my_mod --force
~~~`,
	}

	unknownTemplateIssue = &Issue{
		id: UnknownTemplateId,
		mdMsg: `
# Unknown template!

Two scaffold templates are available:

- ` + "`lua`" + `: a manifest, an empty content directory and a Lua entry script
- ` + "`data`" + `: a manifest and a content directory with a sample tarot

~~~
$ moddev init my_mod --template data
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be read or does not match the
expected schema.

## Search locations (in order of precedence):
1. The file given with ` + "`--config`" + `
2. ` + "`$XDG_CONFIG_HOME/moddev/config.cue`" + `
3. ` + "`./moddev.cue`" + `

## Things you can try:
- Print the configuration moddev resolved:
~~~
$ moddev config show
~~~

- Compare your file with this example:
~~~cue
mods_root: "mods"
ui: {
	verbose: false
	color:   true
}
report: format: "text"
watch: {
	debounce: "500ms"
	ignore: ["**/.git/**"]
}
~~~`,
	}

	validationFailedIssue = &Issue{
		id: ValidationFailedId,
		mdMsg: `
# Validation found errors!

Each ` + "`ERROR`" + ` line above names the problem and, in parentheses, the file
it was found in. Warnings are informational and never fail validation.

## Common causes:
- ` + "`meta.id`" + ` differs from the mod's directory name
- A mixin references a mixin that is not defined in the same content directory
- Two mixins require each other, directly or through others
- A ` + "`kind`" + ` field does not match the file it lives in (tarots.json holds ` + "`Tarot`" + ` items)
- A joker, tag or boss block is missing its closing brace

## Things you can try:
- Re-run validation on every save:
~~~
$ moddev validate mods/my_mod --watch
~~~`,
	}

	issues = map[Id]*Issue{
		noModsFoundIssue.Id():          noModsFoundIssue,
		invalidModIDIssue.Id():         invalidModIDIssue,
		scaffoldTargetExistsIssue.Id(): scaffoldTargetExistsIssue,
		unknownTemplateIssue.Id():      unknownTemplateIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		validationFailedIssue.Id():     validationFailedIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
