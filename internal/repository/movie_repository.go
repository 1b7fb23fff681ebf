package repository

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"movies-api/internal/models"
)

// ErrMovieNotFound is returned when no movie has the requested ID.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository is the in-memory, ordered movie collection.
type MovieRepository struct {
	mu     sync.RWMutex
	movies []models.Movie
	newID  func() string
}

// NewMovieRepository creates a repository holding a copy of seed.
func NewMovieRepository(seed []models.Movie) *MovieRepository {
	movies := make([]models.Movie, 0, len(seed))
	for _, m := range seed {
		movies = append(movies, m.Clone())
	}
	slog.Info("movie repository initialized", "movies", len(movies))
	return &MovieRepository{
		movies: movies,
		newID:  uuid.NewString,
	}
}

// ListAll returns every movie in insertion order.
func (r *MovieRepository) ListAll() []models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, m.Clone())
	}
	return out
}

// ListByGenre returns the movies tagged with genre, compared case-insensitively.
// No match yields an empty, non-nil slice.
func (r *MovieRepository) ListByGenre(genre string) []models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Movie, 0)
	for _, m := range r.movies {
		if m.HasGenre(genre) {
			out = append(out, m.Clone())
		}
	}
	return out
}

// FindByID returns the movie with the given ID.
func (r *MovieRepository) FindByID(id string) (models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Movie{}, ErrMovieNotFound
	}
	return r.movies[i].Clone(), nil
}

// Create appends a movie built from fields under a freshly generated ID.
func (r *MovieRepository) Create(fields models.MovieFields) models.Movie {
	m := models.Movie{MovieFields: fields}.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.newID()
	r.movies = append(r.movies, m)
	return m.Clone()
}

// Update merges patch over the stored movie and replaces it in place.
func (r *MovieRepository) Update(id string, patch models.MoviePatch) (models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Movie{}, ErrMovieNotFound
	}
	r.movies[i] = patch.Apply(r.movies[i])
	return r.movies[i].Clone(), nil
}

// Delete removes the movie with the given ID.
func (r *MovieRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrMovieNotFound
	}
	r.movies = append(r.movies[:i], r.movies[i+1:]...)
	return nil
}

// Len returns the number of stored movies.
func (r *MovieRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies)
}

// indexOf must be called with mu held.
func (r *MovieRepository) indexOf(id string) int {
	for i, m := range r.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
