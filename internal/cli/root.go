// Package cli implements the cobra commands for the wow-launcher binary:
// bootstrap (create and populate the isolated environment), run (launch the
// game) and doctor (verify the environment against the manifest).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlavicJan/way-of-warrior/internal/launcher"
)

// Global flags bound to persistent flags on the root command.
var (
	verbose bool

	// rootDir is the project directory holding the manifest; the isolated
	// environment lives beneath it.
	rootDir string
)

// Version, Commit and Date are injected from main via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand builds the launcher's command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wow-launcher",
		Short: "Install and launch Way of the Warrior",
		Long: `wow-launcher manages an isolated game environment: it installs the game
binary and content packs listed in ` + launcher.ManifestName + ` into ` + launcher.EnvDirName + `/,
and launches the game from there, falling back to a system-wide binary
with a warning when the environment is missing.`,

		// Errors are formatted by Execute, with exit codes attached.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Project directory holding the pack manifest")

	rootCmd.AddCommand(NewBootstrapCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewDoctorCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into exit codes.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if cliErr, ok := err.(*launcher.CLIError); ok {
			os.Exit(int(cliErr.Code))
		}
		os.Exit(int(launcher.ExitGeneralError))
	}
}

// VerboseLog prints to stderr only when --verbose is set.
func VerboseLog(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

func projectEnv() launcher.Env {
	return launcher.NewEnv(rootDir)
}
