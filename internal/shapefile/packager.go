// Package shapefile packages shapefiles for upload. A shapefile is really a
// family of files sharing one basename (.shp, .shx, .dbf, .prj, ...); the
// portal accepts them only as a single zip archive.
package shapefile

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Zipper packages shapefiles into zip archives under a scratch directory.
type Zipper struct {
	// TempDir is where archives are written. Defaults to os.TempDir().
	TempDir string
}

// PackageShapefile collects every sidecar file sharing the shapefile's
// basename into a zip archive and returns the archive path.
func (z *Zipper) PackageShapefile(path string) (string, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	parts, err := filepath.Glob(base + ".*")
	if err != nil {
		return "", fmt.Errorf("globbing sidecar files: %w", err)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no files found for shapefile %s", path)
	}

	tempDir := z.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	zipPath := filepath.Join(tempDir, filepath.Base(base)+".zip")

	f, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, part := range parts {
		if err := addFile(w, part); err != nil {
			w.Close()
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	return zipPath, nil
}

func addFile(w *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	dst, err := w.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("adding %s to archive: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("writing %s to archive: %w", path, err)
	}
	return nil
}
