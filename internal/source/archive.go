package source

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveFetcher stages a bundle by downloading a .zip or .tar.gz archive
// over HTTP(S) and extracting it into the staging directory.
type ArchiveFetcher struct {
	// Client overrides the HTTP client, primarily for tests.
	Client *http.Client
}

func (f *ArchiveFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	url, _ := splitFragment(ref)

	archivePath, err := f.download(ctx, url)
	if err != nil {
		return "", err
	}
	defer os.Remove(archivePath)

	staging, err := newStagingDir()
	if err != nil {
		return "", err
	}

	if err := extractArchive(archivePath, staging); err != nil {
		os.RemoveAll(staging)
		return "", fmt.Errorf("extracting %s: %w", url, err)
	}

	return staging, nil
}

// download retrieves the archive into a temporary file and returns its path.
func (f *ArchiveFetcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", "spring-cli")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s returned status %d", url, resp.StatusCode)
	}

	out, err := os.CreateTemp("", "spring-archive-*"+archiveSuffix(url))
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("writing download: %w", err)
	}

	return out.Name(), nil
}

func archiveSuffix(url string) string {
	if strings.HasSuffix(url, ".zip") {
		return ".zip"
	}
	return ".tar.gz"
}

// extractArchive unpacks every entry of a zip or tar.gz archive into destDir.
func extractArchive(archivePath, destDir string) error {
	if strings.HasSuffix(archivePath, ".zip") {
		return extractZip(archivePath, destDir)
	}
	return extractTarGz(archivePath, destDir)
}

func extractTarGz(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		destPath, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return fmt.Errorf("creating directory %q: %w", destPath, err)
			}
		case tar.TypeReg:
			if err := writeEntry(destPath, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		}
	}

	return nil
}

func extractZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	for _, entry := range r.File {
		destPath, err := safeJoin(destDir, entry.Name)
		if err != nil {
			return err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return fmt.Errorf("creating directory %q: %w", destPath, err)
			}
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("opening zip entry %q: %w", entry.Name, err)
		}
		err = writeEntry(destPath, rc, entry.FileInfo().Mode().Perm())
		rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func writeEntry(destPath string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %q: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("extracting %q: %w", destPath, err)
	}

	return nil
}

// safeJoin rejects archive entries whose names escape destDir. An entry
// naming the archive root itself ("./" or "."), as produced by
// tar -C dir -czf bundle.tgz ., maps to destDir.
func safeJoin(destDir, name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." {
		return destDir, nil
	}
	destPath := filepath.Join(destDir, cleaned)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return destPath, nil
}
