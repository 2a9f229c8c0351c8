package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "kopya_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "kopya_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "kopya_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "kopya_Linux_arm64.tar.gz", false},
		{"windows amd64", "windows", "amd64", "kopya_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"v1.2.0", "v1.1.0", true},
		{"1.2.0", "v1.1.0", true},
		{"v1.1.0", "v1.1.0", false},
		{"v1.0.0", "v1.1.0", false},
		{"v2.0.0-rc.1", "v1.9.9", true},
		{"garbage", "v1.0.0", false},
		{"v1.0.0", "garbage", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tt.latest, tt.current), func(t *testing.T) {
			assert.Equal(t, tt.want, isNewer(tt.latest, tt.current))
		})
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/serkanatas/kopya/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name":"v1.5.0","html_url":"https://example.com/release"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.4.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.5.0", result.LatestVersion)

	result, err = c.Check(context.Background(), &CheckInput{Version: "v1.5.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()
	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  kopya_Darwin_all.tar.gz\nbadline\n\ndef456  kopya_Linux_x86_64.tar.gz\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"kopya_Darwin_all.tar.gz":    "abc123",
		"kopya_Linux_x86_64.tar.gz": "def456",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho kopya")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "kopya", binaryContent)
		got, err := extractBinary(archive, "kopya_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "kopya_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "kopya")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	newBinary := []byte("new binary contents")
	h := sha256.Sum256(newBinary)

	require.NoError(t, applyUpdate(newBinary, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestUpdate_EndToEnd(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho kopya v1.5.0")

	platformAsset, err := assetName()
	if err != nil {
		t.Skipf("unsupported platform: %v", err)
	}

	binName := "kopya"
	archive := buildTarGz(t, binName, binaryContent)
	archiveHash := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), platformAsset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/serkanatas/kopya/releases/latest":
			fmt.Fprint(w, `{"tag_name":"v1.5.0"}`)
		case r.URL.Path == fmt.Sprintf("/serkanatas/kopya/releases/download/v1.5.0/%s", platformAsset):
			_, _ = w.Write(archive)
		case r.URL.Path == "/serkanatas/kopya/releases/download/v1.5.0/checksums.txt":
			fmt.Fprint(w, checksums)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	target := filepath.Join(dir, binName)
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	c := NewChecker(
		WithBaseURLs(srv.URL, srv.URL),
		WithExecPath(func() (string, error) { return target, nil }),
	)

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.4.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Contains(t, stages, "download")
	assert.Contains(t, stages, "done")

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binaryContent, got)
}

func TestUpdate_DevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v1.4.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.4.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}
