package aliasmanagement

import (
	"github.com/akash-sh/akash/internal/core/domain/alias"
	"github.com/akash-sh/akash/internal/core/domain/dialect"
	"github.com/akash-sh/akash/internal/core/domain/managedblock"
	"github.com/akash-sh/akash/internal/core/ports"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ConfigPathFunc resolves the startup file for a dialect.
type ConfigPathFunc func(d dialect.Dialect) (string, error)

// Option customises a service.
type Option func(*service)

// WithConfigPath replaces home-directory based path resolution.
func WithConfigPath(fn ConfigPathFunc) Option {
	return func(s *service) { s.configPath = fn }
}

type service struct {
	store       ports.AliasStore
	shellConfig ports.ShellConfigAccessor
	parser      ports.ManagedBlockParser
	configPath  ConfigPathFunc
	logger      *zap.SugaredLogger
}

// NewService creates a new alias management service.
// It panics if store or shellConfig is nil. A nil parser skips syntax
// validation before writes and makes Status unable to read blocks back.
func NewService(
	store ports.AliasStore,
	shellConfig ports.ShellConfigAccessor,
	parser ports.ManagedBlockParser,
	logger *zap.SugaredLogger,
	opts ...Option,
) ports.AliasManagementService {
	if store == nil {
		panic("alias store cannot be nil")
	}
	if shellConfig == nil {
		panic("shellConfig cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &service{
		store:       store,
		shellConfig: shellConfig,
		parser:      parser,
		configPath:  dialect.ConfigPath,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddAlias validates and stores an alias, overwriting any alias of the same
// name. It does not touch shell config files.
func (s *service) AddAlias(name, command string) (bool, error) {
	a := alias.Alias{Name: name, Command: command}
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := checkMarkers(command); err != nil {
		return false, errors.Wrapf(err, "alias %q", name)
	}

	aliases, err := s.store.Load()
	if err != nil {
		return false, errors.Wrap(err, "failed to load aliases")
	}
	_, existed := aliases[name]
	aliases[name] = command
	if err := s.store.Save(aliases); err != nil {
		return false, errors.Wrapf(err, "failed to save alias %q", name)
	}
	s.logger.Infow("alias stored", "alias", name, "updated", existed)
	return !existed, nil
}

// RemoveAlias deletes name from the store.
func (s *service) RemoveAlias(name string) (bool, error) {
	aliases, err := s.store.Load()
	if err != nil {
		return false, errors.Wrap(err, "failed to load aliases")
	}
	if _, ok := aliases[name]; !ok {
		return false, nil
	}
	delete(aliases, name)
	if err := s.store.Save(aliases); err != nil {
		return false, errors.Wrapf(err, "failed to remove alias %q", name)
	}
	s.logger.Infow("alias removed", "alias", name)
	return true, nil
}

// ListAliases returns the stored aliases ordered by name.
func (s *service) ListAliases() ([]alias.Alias, error) {
	aliases, err := s.store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list aliases")
	}
	return alias.FromMap(aliases), nil
}

// Apply renders the store into d's managed block and writes the startup
// file. The write is skipped when the file already holds exactly that
// content.
func (s *service) Apply(d dialect.Dialect) (ports.ApplyResult, error) {
	res, err := s.plan(d)
	if err != nil {
		return res, err
	}
	if !res.Changed {
		s.logger.Infow("shell config already up to date", "path", res.ConfigPath, "aliases", res.AliasCount)
		return res, nil
	}
	if err := s.shellConfig.Write(res.ConfigPath, res.Content); err != nil {
		return res, errors.Wrapf(err, "failed to write aliases for %s", d.Name())
	}
	s.logger.Infow("aliases applied", "shell", d.Kind(), "path", res.ConfigPath, "aliases", res.AliasCount)
	return res, nil
}

// Preview computes what Apply would write.
func (s *service) Preview(d dialect.Dialect) (ports.ApplyResult, error) {
	return s.plan(d)
}

func (s *service) plan(d dialect.Dialect) (ports.ApplyResult, error) {
	res := ports.ApplyResult{Dialect: d.Kind()}

	aliases, err := s.store.Load()
	if err != nil {
		return res, errors.Wrap(err, "failed to load aliases")
	}
	res.AliasCount = len(aliases)
	res.Cleared = len(aliases) == 0

	path, err := s.configPath(d)
	if err != nil {
		return res, err
	}
	res.ConfigPath = path

	block, err := managedblock.Render(d, aliases)
	if err != nil {
		return res, err
	}
	res.Block = block
	if s.parser != nil {
		if err := s.parser.Validate(d, block); err != nil {
			return res, errors.WithHint(
				errors.Wrapf(err, "rendered %s block failed validation", d.Name()),
				"check the alias commands for unbalanced quotes or stray newlines")
		}
	}

	content, err := s.shellConfig.Read(path)
	if err != nil {
		return res, errors.Wrapf(err, "failed to read %s config", d.Name())
	}
	res.Content = managedblock.Merge(content, dialect.BeginMarker(d), dialect.EndMarker(d), block)
	res.Changed = res.Content != content
	return res, nil
}

// Status compares the store with the aliases found in d's managed block.
func (s *service) Status(d dialect.Dialect) (ports.SyncStatus, error) {
	st := ports.SyncStatus{Dialect: d.Kind(), FileAliases: map[string]string{}}

	stored, err := s.store.Load()
	if err != nil {
		return st, errors.Wrap(err, "failed to load aliases")
	}
	st.StoreCount = len(stored)

	path, err := s.configPath(d)
	if err != nil {
		return st, err
	}
	st.ConfigPath = path

	content, err := s.shellConfig.Read(path)
	if err != nil {
		return st, errors.Wrapf(err, "failed to read %s config", d.Name())
	}
	st.FileExists = content != ""

	block, found := managedblock.Extract(content, dialect.BeginMarker(d), dialect.EndMarker(d))
	st.BlockFound = found
	if found {
		if s.parser == nil {
			return st, errors.New("no block parser configured")
		}
		fileAliases, err := s.parser.ParseAliases(d, block)
		if err != nil {
			return st, errors.Wrapf(err, "failed to read managed block in %s", path)
		}
		st.FileAliases = fileAliases
	}

	st.Missing, st.Extra, st.Changed = diffAliases(stored, st.FileAliases)
	return st, nil
}

// AddPredefined stores every alias whose name is free. Invalid entries and
// taken names are counted as skipped.
func (s *service) AddPredefined(selected []alias.Alias) (int, int, error) {
	aliases, err := s.store.Load()
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to load aliases")
	}

	added, skipped := 0, 0
	for _, a := range selected {
		if _, taken := aliases[a.Name]; taken {
			skipped++
			continue
		}
		if err := a.Validate(); err != nil {
			s.logger.Warnw("skipping invalid predefined alias", "alias", a.Name, "error", err)
			skipped++
			continue
		}
		if err := checkMarkers(a.Command); err != nil {
			skipped++
			continue
		}
		aliases[a.Name] = a.Command
		added++
	}

	if added > 0 {
		if err := s.store.Save(aliases); err != nil {
			return 0, 0, errors.Wrap(err, "failed to save predefined aliases")
		}
	}
	s.logger.Infow("predefined aliases added", "added", added, "skipped", skipped)
	return added, skipped, nil
}

// checkMarkers rejects commands that contain any dialect's block markers.
func checkMarkers(command string) error {
	for _, k := range dialect.Supported() {
		if err := managedblock.CheckCommand(dialect.For(k), command); err != nil {
			return err
		}
	}
	return nil
}
