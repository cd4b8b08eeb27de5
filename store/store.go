// Package store keeps saved algorithms (a name and its source code) in a
// YAML file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const MaxNameLength = 255

var (
	ErrNotFound = errors.New("algorithme introuvable")
	ErrInvalid  = errors.New("algorithme invalide")
)

type Algorithm struct {
	ID        int64     `yaml:"id"`
	Name      string    `yaml:"name"`
	Code      string    `yaml:"code"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// Patch updates only the fields that are set.
type Patch struct {
	Name *string
	Code *string
}

type fileData struct {
	NextID     int64       `yaml:"next_id"`
	Algorithms []Algorithm `yaml:"algorithms"`
}

type Store struct {
	path string
	now  func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func DefaultPath() string {
	return filepath.Join(".", ".algofr", "algorithms.yaml")
}

func Open(path string, opts ...Option) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() (fileData, error) {
	var data fileData
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileData{NextID: 1}, nil
		}
		return data, err
	}
	if err := yaml.Unmarshal(b, &data); err != nil {
		return data, fmt.Errorf("parse store: %w", err)
	}
	if data.NextID <= 0 {
		data.NextID = 1
		for _, a := range data.Algorithms {
			if a.ID >= data.NextID {
				data.NextID = a.ID + 1
			}
		}
	}
	return data, nil
}

func (s *Store) save(data fileData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: le nom est obligatoire", ErrInvalid)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: le nom dépasse %d caractères", ErrInvalid, MaxNameLength)
	}
	return nil
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: le code est obligatoire", ErrInvalid)
	}
	return nil
}

func (s *Store) Create(name, code string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return Algorithm{}, err
	}
	if err := validateCode(code); err != nil {
		return Algorithm{}, err
	}
	data, err := s.load()
	if err != nil {
		return Algorithm{}, err
	}
	now := s.now()
	a := Algorithm{ID: data.NextID, Name: name, Code: code, CreatedAt: now, UpdatedAt: now}
	data.NextID++
	data.Algorithms = append(data.Algorithms, a)
	if err := s.save(data); err != nil {
		return Algorithm{}, err
	}
	return a, nil
}

// List returns every algorithm, most recently created first.
func (s *Store) List() ([]Algorithm, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	list := append([]Algorithm(nil), data.Algorithms...)
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (s *Store) Get(id int64) (Algorithm, error) {
	data, err := s.load()
	if err != nil {
		return Algorithm{}, err
	}
	for _, a := range data.Algorithms {
		if a.ID == id {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// FindByName returns the most recent algorithm saved under name.
func (s *Store) FindByName(name string) (Algorithm, error) {
	list, err := s.List()
	if err != nil {
		return Algorithm{}, err
	}
	name = strings.TrimSpace(name)
	for _, a := range list {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (s *Store) Update(id int64, p Patch) (Algorithm, error) {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		if err := validateName(trimmed); err != nil {
			return Algorithm{}, err
		}
		p.Name = &trimmed
	}
	if p.Code != nil {
		if err := validateCode(*p.Code); err != nil {
			return Algorithm{}, err
		}
	}
	data, err := s.load()
	if err != nil {
		return Algorithm{}, err
	}
	for i := range data.Algorithms {
		a := &data.Algorithms[i]
		if a.ID != id {
			continue
		}
		if p.Name != nil {
			a.Name = *p.Name
		}
		if p.Code != nil {
			a.Code = *p.Code
		}
		a.UpdatedAt = s.now()
		if err := s.save(data); err != nil {
			return Algorithm{}, err
		}
		return *a, nil
	}
	return Algorithm{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func (s *Store) Delete(id int64) error {
	data, err := s.load()
	if err != nil {
		return err
	}
	for i, a := range data.Algorithms {
		if a.ID == id {
			data.Algorithms = append(data.Algorithms[:i], data.Algorithms[i+1:]...)
			return s.save(data)
		}
	}
	return fmt.Errorf("%w: %d", ErrNotFound, id)
}
