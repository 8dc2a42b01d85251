package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlavicJan/way-of-warrior/internal/launcher"
)

// NewRunCommand creates the "run" subcommand.
func NewRunCommand() *cobra.Command {
	var noPause bool

	cmd := &cobra.Command{
		Use:   "run [-- game flags]",
		Short: "Launch the game",
		Long: `Launch the game using the isolated environment's binary. When the
environment is missing, fall back to a system-wide binary on PATH after
printing a warning.

The game's exit code is propagated. On a non-zero exit the code is
printed and the terminal is held open until Enter is pressed, so crash
output stays readable; --no-pause disables the hold-open.`,
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), args, noPause)
		},
	}

	cmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not hold the terminal open after a crash")

	return cmd
}

func runGame(ctx context.Context, args []string, noPause bool) error {
	runner := launcher.NewRunner(projectEnv())
	runner.NoPause = noPause
	runner.Logf = VerboseLog

	code, err := runner.Run(ctx, args)
	if err != nil {
		return err
	}
	if code != 0 {
		// Propagate the child's exit code as our own. The hold-open
		// prompt already happened inside the runner.
		os.Exit(code)
	}
	return nil
}
