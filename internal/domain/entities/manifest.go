package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const (
	// ManifestFileName is the dependency descriptor every project must carry.
	ManifestFileName = "package.json"

	dependenciesKey = "dependencies"
)

// ErrManifestNotFound is returned when the project directory has no package.json.
var ErrManifestNotFound = errors.New("manifest not found")

// valueSpan is the byte range of a JSON string literal inside the raw manifest.
type valueSpan struct {
	start int
	end   int
}

// Manifest is a parsed package.json. Only the runtime "dependencies" object is
// decoded; everything else is kept as the original bytes so that rewrites
// touch nothing but the version strings that actually change.
type Manifest struct {
	Path         string
	Dependencies map[string]string

	raw   []byte
	spans map[string]valueSpan
}

// ReadManifest loads package.json from the given project directory.
func ReadManifest(projectDir string) (*Manifest, error) {
	path := filepath.Join(projectDir, ManifestFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return ParseManifest(path, raw)
}

// ParseManifest decodes raw package.json content and records where each
// dependency version literal sits in it.
func ParseManifest(path string, raw []byte) (*Manifest, error) {
	manifest := &Manifest{
		Path:         path,
		Dependencies: make(map[string]string),
		raw:          raw,
		spans:        make(map[string]valueSpan),
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %q: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("invalid manifest %q: top-level value is not an object", path)
	}

	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return nil, fmt.Errorf("invalid manifest %q: %w", path, keyErr)
		}
		if key, _ := keyTok.(string); key == dependenciesKey {
			if depErr := manifest.readDependencies(dec); depErr != nil {
				return nil, fmt.Errorf("invalid manifest %q: %w", path, depErr)
			}
			continue
		}
		var skipped json.RawMessage
		if skipErr := dec.Decode(&skipped); skipErr != nil {
			return nil, fmt.Errorf("invalid manifest %q: %w", path, skipErr)
		}
	}

	if _, err = dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid manifest %q: %w", path, err)
	}
	return manifest, nil
}

// readDependencies walks the "dependencies" object. Entries whose value is
// not a string (e.g. malformed hand edits) are ignored.
func (m *Manifest) readDependencies(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // "dependencies": null
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New(`"dependencies" is not an object`)
	}

	// a repeated key replaces what an earlier one declared, as json.Unmarshal does
	clear(m.Dependencies)
	clear(m.spans)

	for dec.More() {
		nameTok, nameErr := dec.Token()
		if nameErr != nil {
			return nameErr
		}
		name, _ := nameTok.(string)

		var value json.RawMessage
		if valueErr := dec.Decode(&value); valueErr != nil {
			return valueErr
		}
		if len(value) == 0 || value[0] != '"' {
			continue
		}

		end := int(dec.InputOffset())
		start := end - len(value)
		if start < 0 || !bytes.Equal(m.raw[start:end], value) {
			return fmt.Errorf("cannot locate version of %q", name)
		}

		var version string
		if unmarshalErr := json.Unmarshal(value, &version); unmarshalErr != nil {
			return unmarshalErr
		}
		m.Dependencies[name] = version
		m.spans[name] = valueSpan{start: start, end: end}
	}

	_, err = dec.Token() // closing '}'
	return err
}

// Bytes returns the current manifest content.
func (m *Manifest) Bytes() []byte {
	return m.raw
}

// Plan lists the changes that applying the report would make: one entry per
// name present both in the runtime dependencies and in the report, sorted by
// name. Report entries without a latest version are skipped.
func (m *Manifest) Plan(report OutdatedReport) []DependencyChange {
	names := make([]string, 0, len(report))
	for name, pkg := range report {
		if _, declared := m.Dependencies[name]; declared && pkg.Latest != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	changes := make([]DependencyChange, 0, len(names))
	for _, name := range names {
		from := m.Dependencies[name]
		to := report[name].Latest
		changes = append(changes, DependencyChange{
			Name: name,
			From: from,
			To:   to,
			Bump: ClassifyBump(from, to),
		})
	}
	return changes
}

// Apply rewrites the declared version of every planned change in place and
// returns the changes. Bytes outside the replaced literals are untouched.
func (m *Manifest) Apply(report OutdatedReport) ([]DependencyChange, error) {
	changes := m.Plan(report)
	if len(changes) == 0 {
		return changes, nil
	}

	type splice struct {
		span    valueSpan
		literal []byte
	}
	splices := make([]splice, 0, len(changes))
	for _, change := range changes {
		literal, err := encodeVersion(change.To)
		if err != nil {
			return nil, fmt.Errorf("failed to encode version of %q: %w", change.Name, err)
		}
		splices = append(splices, splice{span: m.spans[change.Name], literal: literal})
	}
	sort.Slice(splices, func(i, j int) bool {
		return splices[i].span.start > splices[j].span.start
	})

	updated := bytes.Clone(m.raw)
	for _, s := range splices {
		tail := bytes.Clone(updated[s.span.end:])
		updated = append(append(updated[:s.span.start], s.literal...), tail...)
	}

	reparsed, err := ParseManifest(m.Path, updated)
	if err != nil {
		return nil, err
	}
	*m = *reparsed
	return changes, nil
}

// Write persists the manifest to its path, keeping the existing file mode.
func (m *Manifest) Write() error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(m.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(m.Path, m.raw, mode); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", m.Path, err)
	}
	return nil
}

// encodeVersion renders a version as a JSON string literal without the HTML
// escaping json.Marshal applies to range operators like ">=".
func encodeVersion(version string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(version); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
