package launcher

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// InstalledPack records one pack the bootstrapper placed (or found already
// valid) in the environment.
type InstalledPack struct {
	ID       string   `json:"id"`
	Version  string   `json:"version,omitempty"`
	FileName string   `json:"file"`
	Kind     PackKind `json:"kind"`
	SHA256   string   `json:"sha256"`
	Reused   bool     `json:"reused,omitempty"`
}

// Receipt is the environment's install record, written after every
// successful bootstrap. Doctor compares it against the manifest.
type Receipt struct {
	InstallID string          `json:"install_id"`
	CreatedAt time.Time       `json:"created_at"`
	Packs     []InstalledPack `json:"packs"`
}

// NewReceipt starts an empty receipt with a fresh install ID.
func NewReceipt() Receipt {
	return Receipt{InstallID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// PackByID finds an installed pack entry.
func (r Receipt) PackByID(id string) (InstalledPack, bool) {
	for _, p := range r.Packs {
		if p.ID == id {
			return p, true
		}
	}
	return InstalledPack{}, false
}

func (p Pack) installed(reused bool) InstalledPack {
	return InstalledPack{
		ID:       p.ID,
		Version:  p.Version,
		FileName: p.FileName,
		Kind:     p.Kind,
		SHA256:   p.SHA256,
		Reused:   reused,
	}
}

// LoadReceipt reads the environment's receipt. A missing receipt returns
// ok=false rather than an error, since that just means "never bootstrapped".
func (e Env) LoadReceipt() (Receipt, bool, error) {
	data, err := os.ReadFile(e.ReceiptPath())
	if errors.Is(err, os.ErrNotExist) {
		return Receipt{}, false, nil
	}
	if err != nil {
		return Receipt{}, false, err
	}
	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return Receipt{}, false, fmt.Errorf("parse receipt: %w", err)
	}
	return r, true, nil
}

// SaveReceipt writes the receipt atomically (temp file + rename), so a
// crash mid-write never leaves a truncated receipt behind.
func (e Env) SaveReceipt(r Receipt) error {
	path := e.ReceiptPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "receipt-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		_ = tmp.Close()
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("swap receipt file: %w", err)
	}
	cleanup = false
	return nil
}
