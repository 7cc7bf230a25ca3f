package cmd

import (
	"fmt"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/tracing"
)

var listFlat bool

var listCmd = &cobra.Command{
	Use:   "list [notes-dir]",
	Short: "Print the notes directory as a tree",
	Long: `Print every note under the notes directory as a tree, with sizes and
titles taken from each note's first heading.

Examples:
  # Tree of the configured notes directory
  folio list

  # Another directory
  folio list ~/work-notes

  # One relative path per line, for scripting
  folio list --flat | grep journal/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFlat, "flat", false, "print one path per line without decoration")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.NotesDir = args[0]
	}
	dir := cfg.ResolvedNotesDir()

	provider, err := tracing.NewProvider(traceConfig(cfg.Trace, trace))
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer shutdownTracing(provider)

	ns := notes.NewStore(dir)
	ns.SetTracer(provider.Tracer())
	list, err := ns.List()
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	out := cmd.OutOrStdout()
	if listFlat {
		for _, n := range list {
			_, _ = fmt.Fprintln(out, n.Path)
		}
		return nil
	}
	_, err = fmt.Fprint(out, renderTree(dir, list))
	return err
}

var (
	dirColor   = color.New(color.FgBlue, color.Bold).SprintFunc()
	titleColor = color.New(color.Faint).SprintFunc()
	sizeColor  = color.New(color.FgCyan).SprintFunc()
)

// renderTree draws list under root. list must be sorted by path, as
// notes.Store.List returns it.
func renderTree(root string, list []notes.Note) string {
	tree := treeprint.NewWithRoot(dirColor(root))
	branches := map[string]treeprint.Tree{}

	var branchFor func(dir string) treeprint.Tree
	branchFor = func(dir string) treeprint.Tree {
		if dir == "." || dir == "" {
			return tree
		}
		if b, ok := branches[dir]; ok {
			return b
		}
		b := branchFor(path.Dir(dir)).AddBranch(dirColor(path.Base(dir) + "/"))
		branches[dir] = b
		return b
	}

	for _, n := range list {
		name := path.Base(n.Path)
		label := name
		if stem := name[:len(name)-len(path.Ext(name))]; n.Title != "" && n.Title != stem {
			label += "  " + titleColor(n.Title)
		}
		branchFor(path.Dir(n.Path)).AddMetaNode(sizeColor(humanize.Bytes(uint64(max(n.Size, 0)))), label)
	}
	return tree.String()
}
