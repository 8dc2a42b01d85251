// Package launcher implements the game's install-and-run plumbing: an
// isolated environment directory holding the game binary and content packs,
// a YAML pack manifest, a bootstrapper that populates the environment, and a
// runner that spawns the game and propagates its exit code.
package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// EnvDirName is the isolated environment directory, created alongside
	// the manifest.
	EnvDirName = ".wowenv"

	// ManifestName is the pack manifest expected in the project root.
	ManifestName = "warrior-packs.yaml"

	// EntryPointName is the game binary the runner looks for, in the
	// environment first and on PATH as a fallback.
	EntryPointName = "warrior"

	receiptName = "installed.json"
)

// Env describes an isolated environment rooted next to the manifest.
type Env struct {
	// Root is the project directory containing the manifest; the
	// environment lives in Root/.wowenv.
	Root string
}

// NewEnv returns the environment for a project root. An empty root means
// the current directory.
func NewEnv(root string) Env {
	if root == "" {
		root = "."
	}
	return Env{Root: root}
}

// Dir is the environment directory.
func (e Env) Dir() string {
	return filepath.Join(e.Root, EnvDirName)
}

// BinDir holds the game binary inside the environment.
func (e Env) BinDir() string {
	return filepath.Join(e.Dir(), "bin")
}

// PacksDir holds installed content packs.
func (e Env) PacksDir() string {
	return filepath.Join(e.Dir(), "packs")
}

// ManifestPath is the pack manifest in the project root.
func (e Env) ManifestPath() string {
	return filepath.Join(e.Root, ManifestName)
}

// ReceiptPath is the install receipt inside the environment.
func (e Env) ReceiptPath() string {
	return filepath.Join(e.Dir(), receiptName)
}

// BinaryPath is where the environment's game binary lives once installed.
func (e Env) BinaryPath() string {
	name := EntryPointName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(e.BinDir(), name)
}

// HasBinary reports whether the environment's game binary is present. The
// runner uses this to decide between the isolated binary and PATH fallback.
func (e Env) HasBinary() (bool, error) {
	info, err := os.Stat(e.BinaryPath())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}
