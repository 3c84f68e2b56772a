package cmd

import (
	"fmt"
	"os"

	"embedfix/internal/config"
	"embedfix/internal/report"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	noColor     bool
	dryRun      bool
	backup      bool
	excludeDirs []string
	reporter    *report.Reporter
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "embedfix",
	Short: "Rewrite Vimeo and YouTube embeds in Markdown/MDX docs",
	Long: `Embedfix rewrites embedded video markup in documentation files.
Responsive Vimeo embeds become fixed-size iframes and YouTube iframes become
the full-width form the documentation renderer expects.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		reporter = report.New(cmd.OutOrStdout(), verbose, noColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runOptions collects the global flags into per-run options
func runOptions(width, height int) config.Options {
	opts := config.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.DryRun = dryRun
	opts.Backup = backup
	opts.ExcludeDirs = excludeDirs
	return opts
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing any file")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", false, "Copy each file to <file>.bak before overwriting it")
	rootCmd.PersistentFlags().StringSliceVar(&excludeDirs, "exclude-dir", nil, "Directory names to skip while walking (e.g. node_modules,.git)")
}
