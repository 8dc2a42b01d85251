package launcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Progress reports download progress for one pack.
type Progress struct {
	PackID          string
	DownloadedBytes int64
	TotalBytes      int64
}

type progressWriter struct {
	packID     string
	downloaded int64
	total      int64
	report     func(Progress)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	n := len(p)
	w.downloaded += int64(n)
	if w.report != nil {
		w.report(Progress{PackID: w.packID, DownloadedBytes: w.downloaded, TotalBytes: w.total})
	}
	return n, nil
}

// BootstrapOptions tunes a bootstrap run.
type BootstrapOptions struct {
	// Force reinstalls packs even when an installed copy already matches
	// its manifest checksum.
	Force bool

	// OnProgress, when set, receives download progress callbacks.
	OnProgress func(Progress)

	// Client overrides the HTTP client. Nil uses http.DefaultClient.
	Client *http.Client
}

// Bootstrap ensures the environment exists and installs every manifest pack
// into it: download to a temp file, verify the sha256, rename into place.
// Already-installed packs whose checksum still matches are skipped. The
// install receipt is rewritten on success.
//
// Unlike the old launcher scripts, a failed install surfaces as an error
// instead of silently reporting success.
func (e Env) Bootstrap(ctx context.Context, m Manifest, opts BootstrapOptions) (Receipt, error) {
	for _, dir := range []string{e.Dir(), e.BinDir(), e.PacksDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Receipt{}, WrapCLIError(ExitBootstrapFailed, "create environment", err)
		}
	}

	receipt := NewReceipt()
	for _, pack := range m.Packs {
		installed, err := e.installPack(ctx, pack, opts)
		if err != nil {
			return Receipt{}, WrapCLIError(ExitBootstrapFailed,
				fmt.Sprintf("install pack %q", pack.ID), err)
		}
		receipt.Packs = append(receipt.Packs, installed)
	}

	if err := e.SaveReceipt(receipt); err != nil {
		return Receipt{}, WrapCLIError(ExitBootstrapFailed, "write install receipt", err)
	}
	return receipt, nil
}

func (e Env) installPack(ctx context.Context, pack Pack, opts BootstrapOptions) (InstalledPack, error) {
	target := pack.installPath(e)

	if !opts.Force {
		if ok, err := fileMatchesChecksum(target, pack.SHA256); err != nil {
			return InstalledPack{}, err
		} else if ok {
			return pack.installed(true), nil
		}
	}

	if err := e.download(ctx, pack, target, opts); err != nil {
		return InstalledPack{}, err
	}
	return pack.installed(false), nil
}

func (e Env) download(ctx context.Context, pack Pack, target string, opts BootstrapOptions) error {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pack.URL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("download failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), pack.ID+"-*.tmp")
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

	pw := &progressWriter{packID: pack.ID, total: resp.ContentLength, report: opts.OnProgress}
	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hasher, pw), resp.Body); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if got := hex.EncodeToString(hasher.Sum(nil)); got != pack.SHA256 {
		return fmt.Errorf("checksum mismatch: want %s, got %s", pack.SHA256, got)
	}

	if pack.Kind == KindBinary {
		if err := os.Chmod(tmpPath, 0o755); err != nil {
			return err
		}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("swap pack file: %w", err)
	}
	cleanup = false
	return nil
}

// fileMatchesChecksum hashes the file at path, treating a missing file as a
// clean mismatch.
func fileMatchesChecksum(path, wantHex string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, err
	}
	return hex.EncodeToString(hasher.Sum(nil)) == wantHex, nil
}
