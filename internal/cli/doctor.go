package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SlavicJan/way-of-warrior/internal/launcher"
)

// NewDoctorCommand creates the "doctor" subcommand.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Verify the environment against the manifest",
		Long: `Check that the isolated environment is complete: the game binary is
present and invocable, and every manifest pack is installed with a clean
checksum and recorded in the install receipt.`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context())
		},
	}
}

func runDoctor(ctx context.Context) error {
	env := projectEnv()

	manifest, err := launcher.LoadManifest(env.ManifestPath())
	if err != nil {
		return err
	}

	result := env.Doctor(ctx, manifest)
	for _, check := range result.Checks {
		mark := "ok"
		if !check.OK {
			mark = "FAIL"
		}
		fmt.Printf("  %-4s %-20s %s\n", mark, check.Name, check.Detail)
	}

	if !result.Healthy {
		return launcher.NewCLIError(launcher.ExitBootstrapFailed,
			"environment is unhealthy, run bootstrap")
	}
	fmt.Println("environment is healthy")
	return nil
}
