// Package archive materializes a file mapping: it writes the files under
// a fresh per-project directory and packs them into a downloadable zip.
package archive

import (
	"archive/zip"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

// Project records where one materialized generation lives on disk.
type Project struct {
	ID          string
	Dir         string
	ArchivePath string
}

// Archiver owns the output root. Every materialization gets its own
// uuid-qualified directory, so invocations never interleave writes.
type Archiver struct {
	outputRoot string

	mu       sync.Mutex
	projects map[string]Project
}

func NewArchiver(outputRoot string) *Archiver {
	return &Archiver{
		outputRoot: outputRoot,
		projects:   make(map[string]Project),
	}
}

// Materialize writes files beneath a fresh project directory (creating
// intermediate directories for nested paths) and zips the result. The
// name hint, typically the site title, only decorates the directory name;
// the project is addressed by its ID.
func (a *Archiver) Materialize(files types.FileMapping, nameHint string) (Project, error) {
	projectID := uuid.New().String()
	dirName := projectID
	if hint := utils.SanitizeName(nameHint); hint != "" && hint != "_" {
		dirName = hint + "-" + projectID
	}
	dir := filepath.Join(a.outputRoot, dirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Project{}, fmt.Errorf("failed to create project dir: %w", err)
	}

	for name, content := range files {
		rel, err := safeRelPath(name)
		if err != nil {
			return Project{}, err
		}
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Project{}, fmt.Errorf("failed to create subdirectories for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return Project{}, fmt.Errorf("failed to write file %s: %w", name, err)
		}
	}
	log.Printf("Wrote %d files to %s", len(files), dir)

	archivePath := filepath.Join(a.outputRoot, projectID+".zip")
	if err := writeZip(archivePath, files); err != nil {
		return Project{}, err
	}
	log.Printf("Created archive %s", archivePath)

	project := Project{ID: projectID, Dir: dir, ArchivePath: archivePath}
	a.mu.Lock()
	a.projects[projectID] = project
	a.mu.Unlock()
	return project, nil
}

// Lookup finds a previously materialized project.
func (a *Archiver) Lookup(projectID string) (Project, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	project, ok := a.projects[projectID]
	return project, ok
}

// PreviewPath picks the document used for in-app preview: the standalone
// preview.html when present, otherwise index.html.
func (a *Archiver) PreviewPath(projectID string) (string, bool) {
	project, ok := a.Lookup(projectID)
	if !ok {
		return "", false
	}
	for _, candidate := range []string{"preview.html", "index.html"} {
		path := filepath.Join(project.Dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// safeRelPath validates a generated filename: forward-slash relative,
// no traversal outside the project root.
func safeRelPath(name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimSpace(name)))
	if cleaned == "." || cleaned == "" {
		return "", fmt.Errorf("empty filename in generation result")
	}
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("unsafe filename %q in generation result", name)
	}
	return cleaned, nil
}

// writeZip packs the mapping into a zip with forward-slash entry names,
// sorted so identical mappings produce identical archives.
func writeZip(path string, files types.FileMapping) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", path, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry, err := zw.Create(filepath.ToSlash(filepath.Clean(filepath.FromSlash(name))))
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if _, err := entry.Write([]byte(files[name])); err != nil {
			return fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
