package escn

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// sceneMarker is the header token identifying a packaged scene file. The
// writer emits the same token, so exported documents are themselves valid
// candidates for later searches.
const sceneMarker = "gd_scene"

// escapeGlobMeta backslash-escapes glob metacharacters so a filename is
// matched verbatim when embedded in a glob pattern. Entity names are data,
// not patterns; le[v]el.tscn must never resolve to level.tscn.
func escapeGlobMeta(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// findSceneInSubtree recursively searches folder for files named filename
// and keeps the ones whose first line carries the packaged-scene marker.
// More than one survivor means an ambiguous project layout: warn and pick
// the first in walk order.
func findSceneInSubtree(settings *ExportSettings, folder, filename string) (string, string, bool) {
	var candidates []string
	fsys := os.DirFS(folder)
	err := doublestar.GlobWalk(fsys, "**/"+escapeGlobMeta(filename), func(path string, d fs.DirEntry) error {
		if !d.IsDir() {
			candidates = append(candidates, filepath.Join(folder, filepath.FromSlash(path)))
		}
		return nil
	})
	if err != nil {
		settings.logger().Warn("scene search failed", "scene", filename, "error", err)
		return "", "", false
	}

	var valid []string
	for _, candidate := range candidates {
		if sniffSceneFile(candidate) {
			valid = append(valid, candidate)
		}
	}
	if len(valid) == 0 {
		return "", "", false
	}
	if len(valid) > 1 {
		settings.logger().Warn("multiple scenes found", "scene", filename)
	}
	return valid[0], "PackedScene", true
}

// sniffSceneFile reads only the first line of the candidate and checks for
// the scene marker.
func sniffSceneFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false
	}
	return strings.Contains(scanner.Text(), sceneMarker)
}

// FindScene searches for an existing packaged scene named filename. The
// search root comes from the settings: the project directory, the directory
// of the export target, or nothing at all (search disabled, no filesystem
// access). Absence is a result, not an error.
func FindScene(settings *ExportSettings, filename string) (path, declaredType string, ok bool) {
	var searchDir string
	switch settings.MaterialSearchPaths {
	case SearchProjectDir:
		if settings.ProjectPathFunc != nil {
			searchDir = settings.ProjectPathFunc()
		}
	case SearchExportDir:
		if settings.Path != "" {
			searchDir = filepath.Dir(settings.Path)
		}
	}
	if searchDir == "" {
		return "", "", false
	}
	return findSceneInSubtree(settings, searchDir, filename)
}
