package output

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Version is the source map version
	Version     = 3
	jsB64Prefix = "# sourceMappingURL=data:application/json;base64,"
)

// RawSourceMap is the JSON form of a version 3 source map.
type RawSourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file,omitempty"`
	SourceRoot     string    `json:"sourceRoot,omitempty"`
	Sources        []string  `json:"sources"`
	Names          []string  `json:"names"`
	Mappings       string    `json:"mappings"`
	SourcesContent []*string `json:"sourcesContent,omitempty"`
}

// Mapping ties a generated position to an original one. Lines are 1-based
// and columns 0-based on both sides, as in source map v3.
type Mapping struct {
	GeneratedLine   int
	GeneratedColumn int
	Source          string
	OriginalLine    int
	OriginalColumn  int
	// Name is the original symbol name; empty for none.
	Name string
}

// SourceMapGenerator collects mappings in output order and serializes them
type SourceMapGenerator struct {
	file           *string
	sources        []string
	sourcesIndex   map[string]int
	sourcesContent map[string]*string // null is represented as nil
	names          []string
	namesIndex     map[string]int
	mappings       []Mapping
	lineOffset     int
}

// NewSourceMapGenerator creates a new SourceMapGenerator
func NewSourceMapGenerator(file *string) *SourceMapGenerator {
	return &SourceMapGenerator{
		file:           file,
		sourcesIndex:   make(map[string]int),
		sourcesContent: make(map[string]*string),
		namesIndex:     make(map[string]int),
	}
}

// AddSource adds a source file to the source map
// The content is `nil` when the content is expected to be loaded using the URL
func (smg *SourceMapGenerator) AddSource(url string, content *string) *SourceMapGenerator {
	if _, exists := smg.sourcesIndex[url]; !exists {
		smg.sourcesIndex[url] = len(smg.sources)
		smg.sources = append(smg.sources, url)
		smg.sourcesContent[url] = content
	}
	return smg
}

// SetSourceContent registers (or replaces) the full text of a source.
func (smg *SourceMapGenerator) SetSourceContent(url string, content string) *SourceMapGenerator {
	smg.AddSource(url, nil)
	smg.sourcesContent[url] = &content
	return smg
}

// AddName registers a symbol name, ignoring duplicates.
func (smg *SourceMapGenerator) AddName(name string) {
	if name == "" {
		return
	}
	if _, exists := smg.namesIndex[name]; !exists {
		smg.namesIndex[name] = len(smg.names)
		smg.names = append(smg.names, name)
	}
}

// AddMapping records one mapping. Mappings must arrive in output order.
func (smg *SourceMapGenerator) AddMapping(m Mapping) error {
	if _, exists := smg.sourcesIndex[m.Source]; !exists {
		return fmt.Errorf("unknown source file \"%s\"", m.Source)
	}
	if m.GeneratedLine < 1 || m.OriginalLine < 1 {
		return fmt.Errorf("lines are 1-based, got generated %d, original %d", m.GeneratedLine, m.OriginalLine)
	}
	if m.GeneratedColumn < 0 || m.OriginalColumn < 0 {
		return fmt.Errorf("columns are 0-based, got generated %d, original %d", m.GeneratedColumn, m.OriginalColumn)
	}
	if n := len(smg.mappings); n > 0 {
		last := smg.mappings[n-1]
		if m.GeneratedLine < last.GeneratedLine ||
			(m.GeneratedLine == last.GeneratedLine && m.GeneratedColumn < last.GeneratedColumn) {
			return fmt.Errorf("mapping should be added in output order")
		}
	}
	smg.AddName(m.Name)
	smg.mappings = append(smg.mappings, m)
	return nil
}

// ShiftLines moves every generated line down by n, for text that gets
// prepended to the output after the mappings were recorded.
func (smg *SourceMapGenerator) ShiftLines(n int) {
	smg.lineOffset += n
}

// Mappings returns the recorded mappings with any line shift applied.
func (smg *SourceMapGenerator) Mappings() []Mapping {
	out := make([]Mapping, len(smg.mappings))
	for i, m := range smg.mappings {
		m.GeneratedLine += smg.lineOffset
		out[i] = m
	}
	return out
}

// ToJSON converts the source map to JSON format
func (smg *SourceMapGenerator) ToJSON() *RawSourceMap {
	sourcesContent := make([]*string, len(smg.sources))
	hasContent := false
	for i, url := range smg.sources {
		sourcesContent[i] = smg.sourcesContent[url]
		if sourcesContent[i] != nil {
			hasContent = true
		}
	}
	if !hasContent {
		sourcesContent = nil
	}

	file := ""
	if smg.file != nil {
		file = *smg.file
	}

	return &RawSourceMap{
		Version:        Version,
		File:           file,
		Sources:        append([]string{}, smg.sources...),
		Names:          append([]string{}, smg.names...),
		Mappings:       smg.encodeMappings(),
		SourcesContent: sourcesContent,
	}
}

// Encode serializes the map as JSON without escaping markup characters in
// sourcesContent.
func (m *RawSourceMap) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToJsComment returns the map as an inline `sourceMappingURL` comment, or
// nothing when the map has no mappings
func (m *RawSourceMap) ToJsComment() (string, error) {
	if m.Mappings == "" {
		return "", nil
	}
	jsonBytes, err := m.Encode()
	if err != nil {
		return "", err
	}
	return "//" + jsB64Prefix + base64.StdEncoding.EncodeToString(jsonBytes), nil
}

func (smg *SourceMapGenerator) encodeMappings() string {
	var sb strings.Builder
	line := 1
	lastCol0 := 0
	lastSourceIndex := 0
	lastSourceLine0 := 0
	lastSourceCol0 := 0
	lastNameIndex := 0
	firstInLine := true

	for _, m := range smg.mappings {
		genLine := m.GeneratedLine + smg.lineOffset
		for line < genLine {
			sb.WriteByte(';')
			line++
			lastCol0 = 0
			firstInLine = true
		}
		if !firstInLine {
			sb.WriteByte(',')
		}
		firstInLine = false

		// zero-based starting column of the line in the generated code
		sb.WriteString(toBase64VLQ(m.GeneratedColumn - lastCol0))
		lastCol0 = m.GeneratedColumn

		// zero-based index into the "sources" list
		sourceIndex := smg.sourcesIndex[m.Source]
		sb.WriteString(toBase64VLQ(sourceIndex - lastSourceIndex))
		lastSourceIndex = sourceIndex
		// the zero-based starting line in the original source
		sb.WriteString(toBase64VLQ(m.OriginalLine - 1 - lastSourceLine0))
		lastSourceLine0 = m.OriginalLine - 1
		// the zero-based starting column in the original source
		sb.WriteString(toBase64VLQ(m.OriginalColumn - lastSourceCol0))
		lastSourceCol0 = m.OriginalColumn

		if m.Name != "" {
			nameIndex := smg.namesIndex[m.Name]
			sb.WriteString(toBase64VLQ(nameIndex - lastNameIndex))
			lastNameIndex = nameIndex
		}
	}
	return sb.String()
}

// toBase64VLQ converts a number to base64 VLQ encoding
func toBase64VLQ(value int) string {
	if value < 0 {
		value = (-value << 1) + 1
	} else {
		value = value << 1
	}

	out := ""
	for {
		digit := value & 31
		value = value >> 5
		if value > 0 {
			digit = digit | 32
		}
		out += string(toBase64Digit(digit))
		if value == 0 {
			break
		}
	}

	return out
}

const b64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// toBase64Digit converts a value to a base64 digit
func toBase64Digit(value int) byte {
	if value < 0 || value >= 64 {
		panic(fmt.Sprintf("can only encode value in the range [0, 63], got %d", value))
	}
	return b64Digits[value]
}
