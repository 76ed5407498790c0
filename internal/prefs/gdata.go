package prefs

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	prefsObject   = "prefs"
	prefsProperty = "values"
)

// GData is a Store persisted through gdata as one YAML map.
// With a nil manager it degrades to memory-only operation.
type GData struct {
	*Memory
	manager *gdata.Manager
	logger  *log.Logger
}

// Open opens the platform data directory for appName and loads any
// previously saved values.
func Open(appName string, logger *log.Logger) (*GData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("prefs: open %s: %w", appName, err)
	}
	return NewGData(m, logger)
}

// NewGData wraps an existing manager. manager may be nil.
func NewGData(manager *gdata.Manager, logger *log.Logger) (*GData, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &GData{Memory: NewMemory(), manager: manager, logger: logger}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GData) load() error {
	if s.manager == nil {
		s.logger.Warn("prefs: no data manager, values will not persist")
		return nil
	}
	if !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("prefs: load: %w", err)
	}
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("prefs: decode: %w", err)
	}
	for k, v := range values {
		s.values[k] = v
	}
	s.logger.Debug("prefs loaded", "keys", len(values))
	return nil
}

// Save writes every value back to the data directory.
func (s *GData) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}
