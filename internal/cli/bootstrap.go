package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlavicJan/way-of-warrior/internal/launcher"
)

// NewBootstrapCommand creates the "bootstrap" subcommand.
func NewBootstrapCommand() *cobra.Command {
	var (
		force   bool
		noPause bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the isolated environment and install all packs",
		Long: `Create the isolated environment directory if it does not exist, then
download and verify every pack listed in the manifest. Packs already
installed with a matching checksum are skipped; --force reinstalls them.

A failed download or checksum mismatch aborts with a non-zero exit code.`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd.Context(), force, noPause)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reinstall packs even when already present")
	cmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not wait for Enter when finished")

	return cmd
}

func runBootstrap(ctx context.Context, force, noPause bool) error {
	env := projectEnv()

	manifest, err := launcher.LoadManifest(env.ManifestPath())
	if err != nil {
		return err
	}
	VerboseLog("manifest %s: %d packs", env.ManifestPath(), len(manifest.Packs))

	receipt, err := env.Bootstrap(ctx, manifest, launcher.BootstrapOptions{
		Force:      force,
		OnProgress: reportProgress,
	})
	if err != nil {
		return err
	}

	for _, pack := range receipt.Packs {
		if pack.Reused {
			fmt.Printf("  %-16s %-8s up to date\n", pack.ID, pack.Version)
		} else {
			fmt.Printf("  %-16s %-8s installed\n", pack.ID, pack.Version)
		}
	}
	fmt.Printf("Done. Environment ready at %s\n", env.Dir())

	// The bootstrapper is usually double-clicked from a file manager, so
	// keep the window open until the operator has read the result.
	if !noPause {
		fmt.Print("press Enter to close... ")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return nil
}

// reportProgress overdraws a single progress line per pack.
func reportProgress(p launcher.Progress) {
	if p.TotalBytes > 0 {
		fmt.Printf("\r  %-16s %3d%%", p.PackID, p.DownloadedBytes*100/p.TotalBytes)
	} else {
		fmt.Printf("\r  %-16s %d bytes", p.PackID, p.DownloadedBytes)
	}
	if p.TotalBytes > 0 && p.DownloadedBytes >= p.TotalBytes {
		fmt.Println()
	}
}
