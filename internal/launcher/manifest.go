package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// PackKind says where a pack is installed inside the environment.
type PackKind string

const (
	// KindBinary installs into bin/ with the executable bit set. The pack
	// whose file name matches the entry point becomes the game binary.
	KindBinary PackKind = "binary"

	// KindContent installs into packs/. This is the default.
	KindContent PackKind = "content"
)

// Pack is one installable artifact from the manifest.
type Pack struct {
	ID       string   `yaml:"id"`
	Version  string   `yaml:"version"`
	FileName string   `yaml:"file"`
	Kind     PackKind `yaml:"kind,omitempty"`
	URL      string   `yaml:"url"`
	SHA256   string   `yaml:"sha256"`
}

// Manifest is the dependency manifest: the full list of packs an
// environment must contain to run the game.
type Manifest struct {
	Packs []Pack `yaml:"packs"`
}

var sha256Pattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// LoadManifest reads and validates the manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, WrapCLIError(ExitInvalidManifest,
			fmt.Sprintf("read manifest %s", path), err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, WrapCLIError(ExitInvalidManifest,
			fmt.Sprintf("parse manifest %s", path), err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, WrapCLIError(ExitInvalidManifest,
			fmt.Sprintf("invalid manifest %s", path), err)
	}
	return m, nil
}

// Validate checks every pack entry and normalises defaults in place.
func (m *Manifest) Validate() error {
	if len(m.Packs) == 0 {
		return fmt.Errorf("manifest lists no packs")
	}
	seen := map[string]bool{}
	for i := range m.Packs {
		p := &m.Packs[i]
		p.ID = strings.TrimSpace(strings.ToLower(p.ID))
		p.SHA256 = strings.TrimSpace(strings.ToLower(p.SHA256))
		if p.Kind == "" {
			p.Kind = KindContent
		}

		if p.ID == "" {
			return fmt.Errorf("pack %d: missing id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("pack %q: duplicate id", p.ID)
		}
		seen[p.ID] = true

		if p.FileName == "" {
			return fmt.Errorf("pack %q: missing file", p.ID)
		}
		if strings.Contains(p.FileName, "/") || strings.Contains(p.FileName, "\\") || p.FileName == ".." {
			return fmt.Errorf("pack %q: file must be a bare name, got %q", p.ID, p.FileName)
		}
		if p.URL == "" {
			return fmt.Errorf("pack %q: missing url", p.ID)
		}
		if !sha256Pattern.MatchString(p.SHA256) {
			return fmt.Errorf("pack %q: sha256 must be 64 hex characters", p.ID)
		}
		if p.Kind != KindBinary && p.Kind != KindContent {
			return fmt.Errorf("pack %q: unknown kind %q", p.ID, p.Kind)
		}
	}
	return nil
}

// PackByID finds a pack entry.
func (m Manifest) PackByID(id string) (Pack, bool) {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, p := range m.Packs {
		if p.ID == id {
			return p, true
		}
	}
	return Pack{}, false
}

// installPath is the final location of the pack inside the environment.
// Binary packs land in bin/, content packs in packs/.
func (p Pack) installPath(env Env) string {
	if p.Kind == KindBinary {
		return filepath.Join(env.BinDir(), p.FileName)
	}
	return filepath.Join(env.PacksDir(), p.FileName)
}
