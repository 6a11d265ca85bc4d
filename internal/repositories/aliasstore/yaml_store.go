package aliasstore

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/akash-sh/akash/internal/repositories/atomicfile"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultDir      = ".akash"
	defaultFilename = "aliases.yaml"
)

// storeFile is the on-disk layout:
//
//	aliases:
//	  gs: git status
type storeFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// YAMLStore keeps the alias dictionary in a YAML file.
type YAMLStore struct {
	path   string
	logger *zap.SugaredLogger
}

// DefaultPath returns ~/.akash/aliases.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine home directory for alias store")
	}
	if home == "" {
		return "", errors.New("failed to determine home directory for alias store")
	}
	return filepath.Join(home, defaultDir, defaultFilename), nil
}

// NewYAMLStore creates a store at path. It panics if path is empty.
func NewYAMLStore(path string, logger *zap.SugaredLogger) ports.AliasStore {
	if path == "" {
		panic("alias store path cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &YAMLStore{path: path, logger: logger}
}

func (s *YAMLStore) Path() string { return s.path }

// Load returns the stored aliases. A missing or empty file is an empty map.
// Entries that fail validation are an error naming the offending alias.
func (s *YAMLStore) Load() (map[string]string, error) {
	aliases := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugw("alias store does not exist yet", "path", s.path)
			return aliases, nil
		}
		return nil, errors.Wrapf(err, "failed to read alias store %s", s.path)
	}

	var f storeFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to parse alias store %s", s.path),
			"the file must contain an 'aliases:' mapping of name: command")
	}

	for name, command := range f.Aliases {
		if err := (alias.Alias{Name: name, Command: command}).Validate(); err != nil {
			return nil, errors.Wrapf(err, "alias store %s", s.path)
		}
		aliases[name] = command
	}
	s.logger.Debugw("alias store loaded", "path", s.path, "count", len(aliases))
	return aliases, nil
}

// Save replaces the file with aliases, creating ~/.akash if needed.
func (s *YAMLStore) Save(aliases map[string]string) error {
	if aliases == nil {
		aliases = map[string]string{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(storeFile{Aliases: aliases}); err != nil {
		return errors.Wrap(err, "failed to encode aliases")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "failed to encode aliases")
	}

	if err := atomicfile.Write(s.path, buf.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to save alias store %s", s.path)
	}
	s.logger.Debugw("alias store saved", "path", s.path, "count", len(aliases))
	return nil
}
