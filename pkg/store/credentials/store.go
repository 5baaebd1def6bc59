package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/de-tools/columbo-connector/pkg/models/domain"
)

const (
	sectionName = "columbo"
	keyUsername = "username"
	keyToken    = "token"
)

// Store persists the connector credentials across invocations.
type Store interface {
	Get(ctx context.Context) (domain.Credentials, error)
	Set(ctx context.Context, creds domain.Credentials) error
	Delete(ctx context.Context) error
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a Store backed by an ini profile file. A missing
// file reads as empty credentials.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Get(_ context.Context) (domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return domain.Credentials{}, err
	}

	section := cfg.Section(sectionName)
	return domain.Credentials{
		Username: section.Key(keyUsername).String(),
		Token:    section.Key(keyToken).String(),
	}, nil
}

func (s *fileStore) Set(_ context.Context, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}

	section := cfg.Section(sectionName)
	section.Key(keyUsername).SetValue(creds.Username)
	section.Key(keyToken).SetValue(creds.Token)

	return s.save(cfg)
}

// Delete removes both stored properties. Deleting credentials that were
// never set is not an error.
func (s *fileStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}

	cfg.DeleteSection(sectionName)
	return s.save(cfg)
}

func (s *fileStore) load() (*ini.File, error) {
	cfg, err := ini.Load(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ini.Empty(), nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return cfg, nil
}

func (s *fileStore) save(cfg *ini.File) error {
	if err := cfg.SaveTo(s.path); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
