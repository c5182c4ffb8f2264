package extractor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Format describes how one bank lays out its statement text. The splitting
// and field-extraction algorithm itself is fixed; supporting a new bank
// means supplying a new Format, not new code.
type Format struct {
	// Name identifies the bank/format and tags every extracted transaction.
	Name string

	// Boundary is the look-ahead signature marking where a new transaction
	// block begins, typically a date followed by one of the bank's
	// transaction-type keywords. The signature stays part of the block.
	Boundary *regexp.Regexp

	// DatePattern matches the leading date token inside a block.
	DatePattern *regexp.Regexp

	// AmountPattern matches the trailing amount token near the block's
	// end, optionally followed by a currency marker.
	AmountPattern *regexp.Regexp

	// RecipientPrefixes are direction words the bank prints before the
	// counterparty name ("Von ", "An "); they are stripped from the
	// extracted recipient.
	RecipientPrefixes []string
}

// FormatConfig is the serializable form of a Format, as loaded from a
// custom formats YAML file.
type FormatConfig struct {
	Name              string   `yaml:"name"`
	Boundary          string   `yaml:"boundary"`
	DatePattern       string   `yaml:"date_pattern"`
	AmountPattern     string   `yaml:"amount_pattern"`
	RecipientPrefixes []string `yaml:"recipient_prefixes"`
}

// NewFormat compiles a FormatConfig into a usable Format. Empty date or
// amount patterns fall back to the shared German-statement defaults.
func NewFormat(cfg FormatConfig) (Format, error) {
	if cfg.Name == "" {
		return Format{}, fmt.Errorf("format name must not be empty")
	}

	boundary, err := regexp.Compile(cfg.Boundary)
	if err != nil {
		return Format{}, fmt.Errorf("invalid boundary pattern for format %s: %w", cfg.Name, err)
	}

	datePattern := defaultDatePattern
	if cfg.DatePattern != "" {
		if datePattern, err = regexp.Compile(cfg.DatePattern); err != nil {
			return Format{}, fmt.Errorf("invalid date pattern for format %s: %w", cfg.Name, err)
		}
	}

	amountPattern := defaultAmountPattern
	if cfg.AmountPattern != "" {
		if amountPattern, err = regexp.Compile(cfg.AmountPattern); err != nil {
			return Format{}, fmt.Errorf("invalid amount pattern for format %s: %w", cfg.Name, err)
		}
	}

	prefixes := cfg.RecipientPrefixes
	if len(prefixes) == 0 {
		prefixes = defaultRecipientPrefixes
	}

	return Format{
		Name:              cfg.Name,
		Boundary:          boundary,
		DatePattern:       datePattern,
		AmountPattern:     amountPattern,
		RecipientPrefixes: prefixes,
	}, nil
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Format{}
)

// Register adds a format to the registry, replacing any format with the
// same name. Lookup is case-insensitive.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(f.Name)] = f
}

// Lookup returns the format registered under the given name.
func Lookup(name string) (Format, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// FormatNames returns the names of all registered formats, sorted.
func FormatNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
