package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects what to update to. An empty TargetVersion means
// "whatever the latest release is".
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once per stage so callers can show
// what the updater is doing.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the release for this OS/arch, verifies it against
// the published checksums and swaps it in over the running binary.
// The checksum file is fetched first so a release with no build for
// this platform fails before the archive download starts.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag, err := c.resolveTag(ctx, input, progress)
	if err != nil {
		return err
	}

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	download := func(name string) ([]byte, error) {
		url := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
			strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
		return c.fetch(ctx, url)
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	sums, err := download("checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	wantHex, ok := checksumFor(sums, asset)
	if !ok {
		return fmt.Errorf("checksums.txt has no entry for %s", asset)
	}
	archive, err := download(asset)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	if err := verifySHA256(archive, wantHex); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := unpackBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Installing..."})
	dest, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	sum := sha256.Sum256(binary)
	if err := installBinary(binary, dest, sum[:]); err != nil {
		return fmt.Errorf("install: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

func (c *Checker) resolveTag(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) (string, error) {
	if input.TargetVersion != "" {
		return input.TargetVersion, nil
	}
	progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
	result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return result.LatestVersion, nil
}

// Release archive naming follows the goreleaser config: a universal
// darwin build, per-arch tarballs for linux and zips for windows.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func releaseAsset(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return "bitesmith_Darwin_all.tar.gz", nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("no release build for architecture %s", goarch)
	}
	switch goos {
	case "linux":
		return "bitesmith_Linux_" + arch + ".tar.gz", nil
	case "windows":
		return "bitesmith_Windows_" + arch + ".zip", nil
	}
	return "", fmt.Errorf("no release build for %s", goos)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a goreleaser checksums.txt ("<hex>  <asset>" per
// line) for the named asset.
func checksumFor(data []byte, asset string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], true
		}
	}
	return "", false
}

func verifySHA256(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

func unpackBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return binaryFromZip(archive, "bitesmith.exe")
	}
	return binaryFromTarGz(archive, "bitesmith")
}

func binaryFromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func binaryFromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// installBinary stages data next to dest, re-reads it to confirm the
// bytes on disk still hash to wantSum, then renames it over dest
// keeping the original file mode. Staging in the same directory keeps
// the final rename atomic.
func installBinary(data []byte, dest string, wantSum []byte) error {
	info, err := os.Stat(dest)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dest, err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(dest), ".bitesmith-update-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	candidate := filepath.Join(staging, "bitesmith.next")
	if err := os.WriteFile(candidate, data, 0o600); err != nil {
		return fmt.Errorf("write candidate: %w", err)
	}

	onDisk, err := os.ReadFile(candidate)
	if err != nil {
		return fmt.Errorf("re-read candidate: %w", err)
	}
	sum := sha256.Sum256(onDisk)
	if !bytes.Equal(sum[:], wantSum) {
		return fmt.Errorf("%w: staged binary changed on disk", ErrChecksum)
	}

	if err := os.Rename(candidate, dest); err != nil {
		return fmt.Errorf("replace binary: %w", err)
	}
	return os.Chmod(dest, info.Mode())
}
