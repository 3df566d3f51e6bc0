package updater

import (
	"archive/tar"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeTarGz builds a tar.gz archive holding a single file.
func writeTarGz(t *testing.T, path, name string, content []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	if err := tw.WriteHeader(&tar.Header{Name: name, Mode: 0o755, Size: int64(len(content))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestExtractBinary_TarGz(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "agentsync_linux_amd64.tar.gz")
	writeTarGz(t, archive, "agentsync", []byte("#!/bin/sh\n"))

	got, err := ExtractBinary(archive, tmp)
	if err != nil {
		t.Fatalf("ExtractBinary failed: %v", err)
	}
	if filepath.Base(got) != "agentsync" {
		t.Errorf("extracted path = %q", got)
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#!/bin/sh\n" {
		t.Errorf("extracted content = %q", string(data))
	}
	if runtime.GOOS != "windows" {
		info, _ := os.Stat(got)
		if info.Mode().Perm()&0o100 == 0 {
			t.Error("extracted binary is not executable")
		}
	}
}

func TestExtractBinary_MissingBinary(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "other.tar.gz")
	writeTarGz(t, archive, "README.md", []byte("docs"))

	if _, err := ExtractBinary(archive, tmp); err == nil {
		t.Fatal("expected error when archive lacks the binary")
	}
}

func TestDownloadAndVerifyChecksum(t *testing.T) {
	tmp := t.TempDir()
	archiveName := ArchiveName()
	payload := []byte("binary bytes")

	sum := sha256.Sum256(payload)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), archiveName)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/" + archiveName:
			w.Write(payload)
		case "/checksums.txt":
			w.Write([]byte(checksums))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	release := &Release{
		Version: "v1.2.3",
		Assets: []Asset{
			{Name: archiveName, DownloadURL: srv.URL + "/" + archiveName},
			{Name: "checksums.txt", DownloadURL: srv.URL + "/checksums.txt"},
		},
	}

	u := New("1.0.0", WithHTTPClient(srv.Client()))
	archivePath, err := u.DownloadArchive(release, tmp)
	if err != nil {
		t.Fatalf("DownloadArchive failed: %v", err)
	}
	if err := u.VerifyChecksum(release, archivePath); err != nil {
		t.Fatalf("VerifyChecksum failed: %v", err)
	}

	// Corrupt the archive and expect a mismatch.
	if err := os.WriteFile(archivePath, []byte("tampered"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := u.VerifyChecksum(release, archivePath); err == nil {
		t.Fatal("expected checksum mismatch for tampered archive")
	}
}
