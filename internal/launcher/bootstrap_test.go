package launcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// packServer serves fixed pack bodies and counts hits per path.
func packServer(t *testing.T, bodies map[string][]byte, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testManifest(srvURL string, binary, assets []byte) Manifest {
	return Manifest{Packs: []Pack{
		{
			ID:       "warrior",
			Version:  "1.0.0",
			FileName: "warrior",
			Kind:     KindBinary,
			URL:      srvURL + "/warrior",
			SHA256:   checksum(binary),
		},
		{
			ID:       "base-assets",
			Version:  "1.0.0",
			FileName: "assets.pak",
			Kind:     KindContent,
			URL:      srvURL + "/assets.pak",
			SHA256:   checksum(assets),
		},
	}}
}

func TestBootstrap_CreatesEnvironmentAndInstalls(t *testing.T) {
	binary := []byte("#!/bin/sh\nexit 0\n")
	assets := []byte("pak contents")
	var hits atomic.Int64
	srv := packServer(t, map[string][]byte{"/warrior": binary, "/assets.pak": assets}, &hits)

	env := NewEnv(t.TempDir())
	_, err := os.Stat(env.Dir())
	require.True(t, os.IsNotExist(err), "environment must not exist before bootstrap")

	m := testManifest(srv.URL, binary, assets)
	require.NoError(t, m.Validate())

	var progressPacks []string
	receipt, err := env.Bootstrap(context.Background(), m, BootstrapOptions{
		OnProgress: func(p Progress) { progressPacks = append(progressPacks, p.PackID) },
	})
	require.NoError(t, err)

	// Environment directory now exists and holds both packs.
	assert.DirExists(t, env.Dir())
	assert.FileExists(t, env.BinaryPath())
	installed, err := os.ReadFile(filepath.Join(env.PacksDir(), "assets.pak"))
	require.NoError(t, err)
	assert.Equal(t, assets, installed)

	// The binary pack is executable.
	if runtime.GOOS != "windows" {
		info, err := os.Stat(env.BinaryPath())
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0o111, "binary pack should carry the executable bit")
	}

	// Receipt covers both packs and carries an install ID.
	assert.NotEmpty(t, receipt.InstallID)
	require.Len(t, receipt.Packs, 2)
	loaded, ok, err := env.LoadReceipt()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, receipt.InstallID, loaded.InstallID)

	assert.NotEmpty(t, progressPacks, "progress callbacks should fire")
	assert.Equal(t, int64(2), hits.Load())
}

func TestBootstrap_SkipsMatchingPacks(t *testing.T) {
	binary := []byte("#!/bin/sh\nexit 0\n")
	assets := []byte("pak contents")
	var hits atomic.Int64
	srv := packServer(t, map[string][]byte{"/warrior": binary, "/assets.pak": assets}, &hits)

	env := NewEnv(t.TempDir())
	m := testManifest(srv.URL, binary, assets)

	_, err := env.Bootstrap(context.Background(), m, BootstrapOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(2), hits.Load())

	receipt, err := env.Bootstrap(context.Background(), m, BootstrapOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load(), "second bootstrap should not re-download")
	for _, p := range receipt.Packs {
		assert.True(t, p.Reused, "pack %s should be marked reused", p.ID)
	}

	_, err = env.Bootstrap(context.Background(), m, BootstrapOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, int64(4), hits.Load(), "force should re-download everything")
}

func TestBootstrap_ChecksumMismatchFails(t *testing.T) {
	binary := []byte("#!/bin/sh\nexit 0\n")
	var hits atomic.Int64
	srv := packServer(t, map[string][]byte{"/warrior": binary}, &hits)

	env := NewEnv(t.TempDir())
	m := Manifest{Packs: []Pack{{
		ID:       "warrior",
		FileName: "warrior",
		Kind:     KindBinary,
		URL:      srv.URL + "/warrior",
		SHA256:   checksum([]byte("something else entirely")),
	}}}

	_, err := env.Bootstrap(context.Background(), m, BootstrapOptions{})
	require.Error(t, err)

	cliErr, ok := err.(*CLIError)
	require.True(t, ok)
	assert.Equal(t, ExitBootstrapFailed, cliErr.Code)
	assert.Contains(t, err.Error(), "checksum mismatch")

	// The corrupt download never lands in the environment.
	assert.NoFileExists(t, env.BinaryPath())
	ok, err = env.HasBinary()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBootstrap_DownloadFailureSurfaces(t *testing.T) {
	var hits atomic.Int64
	srv := packServer(t, map[string][]byte{}, &hits)

	env := NewEnv(t.TempDir())
	m := Manifest{Packs: []Pack{{
		ID:       "warrior",
		FileName: "warrior",
		Kind:     KindBinary,
		URL:      srv.URL + "/warrior",
		SHA256:   checksum([]byte("x")),
	}}}

	_, err := env.Bootstrap(context.Background(), m, BootstrapOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	// No receipt is written when any install fails.
	_, ok, loadErr := env.LoadReceipt()
	require.NoError(t, loadErr)
	assert.False(t, ok)
}
