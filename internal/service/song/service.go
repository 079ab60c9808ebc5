// Package song implements the shared playlist: songs that mean something to
// the couple, each with the reason it was added.
package song

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

type songRepo interface {
	List(ctx context.Context) ([]domain.Song, error)
	Create(ctx context.Context, s *domain.Song) (*domain.Song, error)
	Update(ctx context.Context, id uuid.UUID, s *domain.Song) (*domain.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements song operations.
type Service struct {
	log   *slog.Logger
	songs songRepo
}

// NewService creates a new song service instance.
func NewService(logger *slog.Logger, songs songRepo) *Service {
	return &Service{
		log:   logger.With("service", "song"),
		songs: songs,
	}
}

// List returns all songs, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Song, error) {
	songs, err := s.songs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("song.List: %w", err)
	}
	return songs, nil
}

// Create adds a song to the playlist.
func (s *Service) Create(ctx context.Context, input SongInput) (*domain.Song, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	song, err := s.songs.Create(ctx, &domain.Song{
		ID:        uuid.New(),
		Song:      input.Song,
		Artist:    input.Artist,
		Reason:    input.Reason,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("song.Create: %w", err)
	}

	s.log.InfoContext(ctx, "song added",
		slog.String("song_id", song.ID.String()))

	return song, nil
}

// Update replaces a song's fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input SongInput) (*domain.Song, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	song, err := s.songs.Update(ctx, id, &domain.Song{
		Song:   input.Song,
		Artist: input.Artist,
		Reason: input.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("song.Update: %w", err)
	}

	return song, nil
}

// Delete removes a song from the playlist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.songs.Delete(ctx, id); err != nil {
		return fmt.Errorf("song.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "song deleted",
		slog.String("song_id", id.String()))

	return nil
}

const msgSongFieldsRequired = "Canción, artista y razón son requeridos"

// SongInput holds parameters for creating or replacing a song.
type SongInput struct {
	Song   string
	Artist string
	Reason string
}

func (i *SongInput) normalize() {
	i.Song = strings.TrimSpace(i.Song)
	i.Artist = strings.TrimSpace(i.Artist)
	i.Reason = strings.TrimSpace(i.Reason)
}

// Validate validates the song input.
func (i SongInput) Validate() error {
	var errs []domain.FieldError

	if i.Song == "" {
		errs = append(errs, domain.FieldError{Field: "song", Message: msgSongFieldsRequired})
	}
	if i.Artist == "" {
		errs = append(errs, domain.FieldError{Field: "artist", Message: msgSongFieldsRequired})
	}
	if i.Reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: msgSongFieldsRequired})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
