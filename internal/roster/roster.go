// Package roster loads participant names from disk.
package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyRoster       = errors.New("roster has no participants")
	ErrUnsupportedFormat = errors.New("unsupported roster format")
)

// Format is a roster file encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks a format from the file extension. Files without an
// extension are read as plain text.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".txt", ".list":
		return FormatText, nil
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Options tunes loading.
type Options struct {
	// SimilarityThreshold is the largest edit distance reported as a
	// near-duplicate. Negative disables the check.
	SimilarityThreshold int
}

// Result is a loaded roster.
type Result struct {
	Path     string
	Format   Format
	Names    []string
	Warnings []Warning
}

// Load reads the roster at path. A roster without names is an error.
func Load(path string, opts Options) (Result, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Result{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	names, err := Decode(f, format)
	if err != nil {
		return Result{}, fmt.Errorf("read roster %s: %w", filepath.Base(path), err)
	}
	if len(names) == 0 {
		return Result{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyRoster)
	}
	return Result{
		Path:     path,
		Format:   format,
		Names:    names,
		Warnings: Check(names, opts.SimilarityThreshold),
	}, nil
}

// Decode reads names from r. Names are trimmed and blanks dropped; order
// is preserved. A leading byte-order mark is dropped, and UTF-16 input with
// a BOM is decoded to UTF-8.
func Decode(r io.Reader, format Format) ([]string, error) {
	r = transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	switch format {
	case FormatText:
		return decodeText(r)
	case FormatCSV:
		return decodeCSV(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatTOML:
		return decodeTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeText(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func decodeCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	var out []string
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		if i == 0 && strings.EqualFold(name, "name") {
			continue
		}
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

type rosterDoc struct {
	Participants []string `yaml:"participants" toml:"participants"`
}

func decodeYAML(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil {
		return clean(list), nil
	}
	var doc rosterDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return clean(doc.Participants), nil
}

func decodeTOML(r io.Reader) ([]string, error) {
	var doc rosterDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return clean(doc.Participants), nil
}

func clean(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Write encodes names in format. Used by the roster convert command.
func Write(w io.Writer, names []string, format Format) error {
	switch format {
	case FormatText:
		var buf bytes.Buffer
		for _, n := range names {
			buf.WriteString(n)
			buf.WriteByte('\n')
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"name"}); err != nil {
			return err
		}
		for _, n := range names {
			if err := cw.Write([]string{n}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rosterDoc{Participants: names}); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(rosterDoc{Participants: names})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
