package municipio

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Registry is a load-once lookup of municipalities by IBGE code. It is safe
// for concurrent use.
type Registry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[snapshot]

	encoding string
	logger   *zap.Logger
}

type snapshot struct {
	states     map[int]string
	municipios map[int]Municipio
}

// Option customizes a Registry.
type Option func(*Registry)

// WithEncoding sets the character encoding of CSV reference tables
// ("UTF-8", "ISO-8859-1", "Windows-1252").
func WithEncoding(encoding string) Option {
	return func(r *Registry) {
		r.encoding = encoding
	}
}

// WithLogger sets the logger used while loading.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty, uninitialized registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		encoding: "UTF-8",
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize loads the state and municipality tables. Only the first
// successful call loads; later calls return nil without touching the files.
// Concurrent first callers block until the single load finishes.
func (r *Registry) Initialize(stateTablePath, municipalityTablePath string) error {
	if r.snapshot.Load() != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snapshot.Load() != nil {
		return nil
	}

	for _, path := range []string{stateTablePath, municipalityTablePath} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return errors.Wrapf(ErrResourceNotFound, "%s", path)
			}
			return errors.Wrapf(err, "stat %s", path)
		}
	}

	states, err := loadStates(stateTablePath, r.encoding)
	if err != nil {
		return errors.Wrapf(err, "load states from %s", stateTablePath)
	}

	municipios, skipped, err := loadMunicipios(municipalityTablePath, r.encoding, states)
	if err != nil {
		return errors.Wrapf(err, "load municipalities from %s", municipalityTablePath)
	}

	r.snapshot.Store(&snapshot{states: states, municipios: municipios})

	r.logger.Info("municipality registry loaded",
		zap.Int("states", len(states)),
		zap.Int("municipalities", len(municipios)),
		zap.Int("skipped_rows", skipped),
	)
	return nil
}

// Initialized reports whether Initialize has completed successfully.
func (r *Registry) Initialized() bool {
	return r.snapshot.Load() != nil
}

// Len returns the number of loaded municipalities.
func (r *Registry) Len() int {
	s := r.snapshot.Load()
	if s == nil {
		return 0
	}
	return len(s.municipios)
}

// GetMunicipio returns the municipality for code.
//
// RETURNS:
//   - ErrNotInitialized before Initialize.
//   - ErrInvalidArgument when code is nil.
//   - (nil, nil) when code is not in the table.
//   - A copy of the record otherwise.
func (r *Registry) GetMunicipio(code *int) (*Municipio, error) {
	s := r.snapshot.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}
	if code == nil {
		return nil, ErrInvalidArgument
	}

	m, ok := s.municipios[*code]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// StateAbbreviation returns the UF for an IBGE state code.
func (r *Registry) StateAbbreviation(stateCode int) (string, bool) {
	s := r.snapshot.Load()
	if s == nil {
		return "", false
	}
	uf, ok := s.states[stateCode]
	return uf, ok
}
