package launcher

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Check is one doctor verification step.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// DoctorResult aggregates the environment health checks.
type DoctorResult struct {
	Checks  []Check
	Healthy bool
}

func (d *DoctorResult) add(name string, ok bool, detail string) {
	d.Checks = append(d.Checks, Check{Name: name, OK: ok, Detail: detail})
	if !ok {
		d.Healthy = false
	}
}

const probeTimeout = 10 * time.Second

// Doctor verifies that the environment can actually run the game: the
// directory exists, the receipt covers every manifest pack at the right
// checksum, the installed files still hash clean, and the environment's
// binary answers a -version probe.
func (e Env) Doctor(ctx context.Context, m Manifest) DoctorResult {
	result := DoctorResult{Healthy: true}

	hasBin, err := e.HasBinary()
	if err != nil {
		result.add("environment", false, err.Error())
		return result
	}
	if !hasBin {
		result.add("environment", false,
			fmt.Sprintf("no game binary at %s (run bootstrap first)", e.BinaryPath()))
		return result
	}
	result.add("environment", true, e.Dir())

	receipt, ok, err := e.LoadReceipt()
	switch {
	case err != nil:
		result.add("receipt", false, err.Error())
	case !ok:
		result.add("receipt", false, "missing install receipt")
	default:
		result.add("receipt", true, fmt.Sprintf("install %s, %d packs", receipt.InstallID, len(receipt.Packs)))
	}

	for _, pack := range m.Packs {
		name := "pack " + pack.ID
		if ok {
			rec, found := receipt.PackByID(pack.ID)
			if !found {
				result.add(name, false, "not in receipt")
				continue
			}
			if rec.SHA256 != pack.SHA256 || rec.Version != pack.Version {
				result.add(name, false, fmt.Sprintf("receipt has %s@%s, manifest wants %s@%s",
					rec.Version, shortHash(rec.SHA256), pack.Version, shortHash(pack.SHA256)))
				continue
			}
		}
		match, err := fileMatchesChecksum(pack.installPath(e), pack.SHA256)
		if err != nil {
			result.add(name, false, err.Error())
			continue
		}
		if !match {
			result.add(name, false, "installed file missing or checksum drifted")
			continue
		}
		result.add(name, true, pack.FileName)
	}

	if err := e.probeBinary(ctx); err != nil {
		result.add("binary probe", false, err.Error())
	} else {
		result.add("binary probe", true, e.BinaryPath())
	}
	return result
}

func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}

// probeBinary invokes the environment binary with -version to prove it is
// executable at all.
func (e Env) probeBinary(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.BinaryPath(), "-version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
