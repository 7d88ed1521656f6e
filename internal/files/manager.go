package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const filePermissions = 0o644

// Manager centralizes where the timesheet log lives and where exports are written.
type Manager struct {
	basePath string
	config   Config
	loaded   bool
	// logPath replaces the configured log when set by JAM_LOG or SetLogPath.
	logPath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to JAM_HOME or the working directory (see
// ResolveBasePath). JAM_LOG, when set, replaces the configured log path.
// jam.yaml is not read until Load, so the defaults apply until then.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	m := &Manager{basePath: abs, config: DefaultConfig()}
	if override, ok := lookupEnv(LogEnv); ok {
		path, err := normalizePath(override)
		if err != nil {
			return nil, err
		}
		m.logPath = m.resolve(path)
	}
	return m, nil
}

// Load reads jam.yaml from the base directory. Later calls are no-ops once a
// load has succeeded.
func (m *Manager) Load() error {
	if m.loaded {
		return nil
	}
	cfg, err := LoadConfig(m.basePath)
	if err != nil {
		return err
	}
	m.config = cfg
	m.loaded = true
	return nil
}

// BasePath returns the directory holding the log and exported files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.config
}

// LogPath returns the absolute path of the timesheet log.
func (m *Manager) LogPath() string {
	if m.logPath != "" {
		return m.logPath
	}
	return m.resolve(m.config.Log)
}

// SetLogPath points the manager at a different log for this run.
func (m *Manager) SetLogPath(path string) {
	m.logPath = m.resolve(path)
}

// TotalsPath returns the absolute path of the Markdown totals table.
func (m *Manager) TotalsPath() string {
	return m.resolve(m.config.Totals)
}

// CSVPath returns the absolute path of the CSV export.
func (m *Manager) CSVPath() string {
	return m.resolve(m.config.CSV)
}

func (m *Manager) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.basePath, path)
}

// Export replaces the file at path with whatever write produces. It reports
// whether the file was newly created rather than rewritten.
func (m *Manager) Export(path string, write func(io.Writer) error) (bool, error) {
	if m == nil {
		return false, errors.New("files.Manager is nil")
	}

	created := false
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("stat %s: %w", filepath.Base(path), err)
		}
		created = true
	}

	var b strings.Builder
	if err := write(&b); err != nil {
		return false, err
	}
	if err := writeAtomic(path, b.String()); err != nil {
		return false, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return created, nil
}

// Clean removes the exported files that exist and returns their paths.
func (m *Manager) Clean() ([]string, error) {
	var removed []string
	for _, path := range []string{m.CSVPath(), m.TotalsPath()} {
		err := os.Remove(path)
		switch {
		case err == nil:
			removed = append(removed, path)
		case errors.Is(err, os.ErrNotExist):
		default:
			return removed, fmt.Errorf("remove %s: %w", filepath.Base(path), err)
		}
	}
	return removed, nil
}

func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "jam-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
