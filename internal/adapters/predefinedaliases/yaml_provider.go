package predefinedaliases

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed predefined_aliases.yaml
var embeddedPredefinedAliases []byte

// YAMLProvider implements the PredefinedAliasProvider interface
// by decoding the alias list bundled into the binary.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider.
func NewYAMLProvider() (ports.PredefinedAliasProvider, error) {
	return &YAMLProvider{}, nil
}

// GetPredefinedAliases parses the embedded YAML list. Empty content means no
// aliases. Entries with an invalid name or an empty command are an error, so
// a broken bundle is caught by tests rather than by users.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	predefined := []alias.Alias{}
	if len(embeddedPredefinedAliases) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(embeddedPredefinedAliases))
	decoder.KnownFields(true)

	if err := decoder.Decode(&predefined); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, errors.Wrap(err, "failed to unmarshal embedded predefined aliases")
	}

	for _, a := range predefined {
		if err := a.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid embedded predefined alias %q", a.Name)
		}
	}
	return predefined, nil
}
