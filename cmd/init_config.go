package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/paths"
)

var initForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write the default config file",
	Long: `Write a commented default config file.

Without a path the file goes to ~/.config/folio/config.yaml. Use
.folio/config.yaml for a per-directory config.

Examples:
  folio init-config
  folio init-config .folio/config.yaml
  folio init-config --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(initConfigCmd)
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := paths.UserConfig()
	if len(args) == 1 {
		path = paths.Expand(args[0])
	}
	if fileExists(path) && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}
