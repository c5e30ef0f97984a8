package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Categories is the order in which the bundled files are merged.
var Categories = []string{"abs", "arms", "back", "cardio", "chest", "fullbody", "legs", "shoulders"}

// Format identifies the encoding of a catalog source.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks a format from a file extension. ok is false for
// unsupported extensions.
func FormatFor(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// Decode reads an array of raw records and normalizes each one.
func Decode(r io.Reader, format Format) ([]models.Exercise, error) {
	var raws []RawRecord
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raws); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode yaml catalog: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&raws); err != nil {
			return nil, fmt.Errorf("failed to decode json catalog: %w", err)
		}
	}

	exercises := make([]models.Exercise, 0, len(raws))
	for i, raw := range raws {
		exercises = append(exercises, Normalize(raw, i))
	}
	return exercises, nil
}

// Bundled returns the exercises shipped with the binary, merged in
// Categories order.
func Bundled() ([]models.Exercise, error) {
	var all []models.Exercise
	for _, category := range Categories {
		f, err := dataFS.Open(path.Join("data", category+".json"))
		if err != nil {
			return nil, fmt.Errorf("failed to open bundled catalog %s: %w", category, err)
		}
		exercises, err := Decode(f, FormatJSON)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("bundled catalog %s: %w", category, err)
		}
		all = append(all, exercises...)
	}
	return all, nil
}

// ReadDir loads every .json/.yaml/.yml file in dir, sorted by file name.
func ReadDir(dir string) ([]models.Exercise, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := FormatFor(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var all []models.Exercise
	for _, name := range names {
		exercises, err := ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded catalog file", "file", name, "exercises", len(exercises))
		all = append(all, exercises...)
	}
	return all, nil
}

// ReadFile loads a single catalog file, choosing the decoder by extension.
func ReadFile(name string) ([]models.Exercise, error) {
	format, ok := FormatFor(name)
	if !ok {
		return nil, fmt.Errorf("unsupported catalog file: %s", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	exercises, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return exercises, nil
}

// Load builds the catalog from the bundled data.
func Load() (*Catalog, error) {
	return LoadDir("")
}

// LoadDir builds the catalog from the bundled data followed by the files in
// dir. An empty dir loads only the bundled data.
func LoadDir(dir string) (*Catalog, error) {
	exercises, err := Bundled()
	if err != nil {
		return nil, err
	}
	if dir != "" {
		extra, err := ReadDir(dir)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, extra...)
	}
	c := New(exercises)
	logger.Debug("Catalog loaded", "exercises", c.Len())
	return c, nil
}
