package apriori

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/projectdiscovery/fasttemplate"
	"github.com/projectdiscovery/utils/errkit"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML}

var (
	// ErrInvalidFormat is returned for an unsupported output format
	ErrInvalidFormat = errkit.New("unsupported output format")
)

// Itemset is a frequent itemset resolved to item names
type Itemset struct {
	Items   []string `json:"items" yaml:"items"`
	Count   int      `json:"count" yaml:"count"`
	Support float64  `json:"support" yaml:"support"`
}

// Level holds the frequent itemsets of one size ordered by ascending support
type Level struct {
	K        int       `json:"level" yaml:"level"`
	Itemsets []Itemset `json:"itemsets" yaml:"itemsets"`
}

// ResultWriter renders levels as they are produced
type ResultWriter interface {
	WriteLevel(level *Level) error
}

// OutputOptions selects the renderer
type OutputOptions struct {
	// Format is one of text, json or yaml (default text)
	Format string
	// Template renders one line per itemset, overrides Format when set.
	// Placeholders: {{level}} {{items}} {{size}} {{count}} {{support}}
	Template string
}

// NewWriter returns the ResultWriter selected by opts
func NewWriter(w io.Writer, opts *OutputOptions) (ResultWriter, error) {
	if opts == nil {
		opts = &OutputOptions{}
	}
	if opts.Template != "" {
		return NewTemplateWriter(w, opts.Template)
	}
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return &TextWriter{w: w}, nil
	case FormatJSON:
		return &JSONWriter{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &YAMLWriter{w: w}, nil
	}
	return nil, ErrInvalidFormat
}

func formatSupport(support float64) string {
	return strconv.FormatFloat(support, 'f', -1, 64)
}

// TextWriter writes `[a, b]<tab>support` lines and a blank line after each level
type TextWriter struct {
	w io.Writer
}

func (t *TextWriter) WriteLevel(level *Level) error {
	var sb strings.Builder
	for _, itemset := range level.Itemsets {
		sb.WriteString("[")
		sb.WriteString(strings.Join(itemset.Items, ", "))
		sb.WriteString("]\t")
		sb.WriteString(formatSupport(itemset.Support))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(t.w, sb.String())
	return err
}

// JSONWriter writes one json object per itemset per line
type JSONWriter struct {
	enc *json.Encoder
}

type jsonLine struct {
	Level int `json:"level"`
	Itemset
}

func (j *JSONWriter) WriteLevel(level *Level) error {
	for _, itemset := range level.Itemsets {
		if err := j.enc.Encode(jsonLine{Level: level.K, Itemset: itemset}); err != nil {
			return err
		}
	}
	return nil
}

// YAMLWriter writes every level as an item of a yaml sequence
type YAMLWriter struct {
	w io.Writer
}

func (y *YAMLWriter) WriteLevel(level *Level) error {
	bin, err := goyaml.Marshal([]*Level{level})
	if err != nil {
		return err
	}
	_, err = y.w.Write(bin)
	return err
}

// TemplateWriter renders a user supplied template for every itemset
type TemplateWriter struct {
	w        io.Writer
	template string
}

// NewTemplateWriter validates template and returns a TemplateWriter
func NewTemplateWriter(w io.Writer, template string) (*TemplateWriter, error) {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return nil, fmt.Errorf("invalid output template: %w", err)
	}
	return &TemplateWriter{w: w, template: template}, nil
}

func (t *TemplateWriter) WriteLevel(level *Level) error {
	for _, itemset := range level.Itemsets {
		line := Replace(t.template, map[string]interface{}{
			"level":   level.K,
			"items":   strings.Join(itemset.Items, ","),
			"size":    len(itemset.Items),
			"count":   itemset.Count,
			"support": formatSupport(itemset.Support),
		})
		if _, err := io.WriteString(t.w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
