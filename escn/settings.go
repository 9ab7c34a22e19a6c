package escn

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// SearchPathMode selects the root of the external-scene filesystem search.
type SearchPathMode string

const (
	SearchProjectDir SearchPathMode = "PROJECT_DIR"
	SearchExportDir  SearchPathMode = "EXPORT_DIR"
	SearchNone       SearchPathMode = "NONE"
)

// ExportSettings is the read-only configuration an export pass consumes.
type ExportSettings struct {
	// Path is the export target file; its directory is the EXPORT_DIR
	// search root.
	Path string

	// ObjectTypes gates which entity kinds are exported. Nil or empty
	// exports everything.
	ObjectTypes map[EntityKind]bool

	// MaterialSearchPaths selects the search-root strategy for linked
	// scenes; anything but PROJECT_DIR/EXPORT_DIR disables the search.
	MaterialSearchPaths SearchPathMode

	// ProjectPathFunc lazily resolves the project root for PROJECT_DIR
	// searches.
	ProjectPathFunc func() string

	// Logger receives non-fatal warnings; nil falls back to slog.Default.
	Logger *slog.Logger
}

func (s *ExportSettings) logger() *slog.Logger {
	if s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// ExportsType reports whether entities of the given kind should be exported.
func (s *ExportSettings) ExportsType(kind EntityKind) bool {
	if s == nil || len(s.ObjectTypes) == 0 {
		return true
	}
	return s.ObjectTypes[kind]
}

type settingsFile struct {
	Path                string   `yaml:"path"`
	ObjectTypes         []string `yaml:"object_types"`
	MaterialSearchPaths string   `yaml:"material_search_paths"`
	ProjectPath         string   `yaml:"project_path"`
}

// LoadSettings reads export settings from a YAML file.
func LoadSettings(path string) (*ExportSettings, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	var sf settingsFile
	if err := yaml.Unmarshal(body, &sf); err != nil {
		return nil, fmt.Errorf("load settings %s: %w", path, err)
	}
	s := &ExportSettings{
		Path:                sf.Path,
		MaterialSearchPaths: SearchPathMode(sf.MaterialSearchPaths),
	}
	if len(sf.ObjectTypes) > 0 {
		s.ObjectTypes = make(map[EntityKind]bool, len(sf.ObjectTypes))
		for _, t := range sf.ObjectTypes {
			s.ObjectTypes[EntityKind(t)] = true
		}
	}
	if sf.ProjectPath != "" {
		root := sf.ProjectPath
		s.ProjectPathFunc = func() string { return root }
	}
	return s, nil
}
