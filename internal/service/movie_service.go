package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"movies-api/internal/models"
	"movies-api/internal/repository"
	"movies-api/internal/validation"
)

const (
	movieListCacheTTL   = 1 * time.Minute
	movieDetailCacheTTL = 5 * time.Minute
)

// MovieService handles business logic for movies.
type MovieService struct {
	repo  *repository.MovieRepository
	redis *redis.Client
	// cachePrefix scopes cache keys to this process, whose catalog lives only in memory.
	cachePrefix string
	// generation is bumped after every write and is part of each cache key, so a
	// read that raced a write can only populate a key nobody looks up anymore.
	generation atomic.Uint64
}

// NewMovieService creates a new MovieService. rdb may be nil, in which case
// responses are never cached.
func NewMovieService(repo *repository.MovieRepository, rdb *redis.Client) *MovieService {
	return &MovieService{
		repo:        repo,
		redis:       rdb,
		cachePrefix: "movies:" + uuid.NewString() + ":",
	}
}

// ListMovies returns all movies, or only those tagged with genre when it is non-empty.
func (s *MovieService) ListMovies(ctx context.Context, genre string) []models.Movie {
	cacheKey := s.cacheKey("list", strings.ToLower(genre))

	var cached []models.Movie
	if s.getFromCache(ctx, cacheKey, &cached) {
		return cached
	}

	var movies []models.Movie
	if genre == "" {
		movies = s.repo.ListAll()
	} else {
		movies = s.repo.ListByGenre(genre)
	}

	s.setCache(ctx, cacheKey, movies, movieListCacheTTL)
	return movies
}

// GetMovie returns the movie with the given ID.
func (s *MovieService) GetMovie(ctx context.Context, id string) (models.Movie, error) {
	cacheKey := s.cacheKey("detail", id)

	var cached models.Movie
	if s.getFromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	movie, err := s.repo.FindByID(id)
	if err != nil {
		return models.Movie{}, err
	}

	s.setCache(ctx, cacheKey, movie, movieDetailCacheTTL)
	return movie, nil
}

// CreateMovie validates payload as a complete movie and stores it under a new ID.
func (s *MovieService) CreateMovie(ctx context.Context, payload validation.Payload) (models.Movie, error) {
	fields, err := validation.ValidateMovie(payload)
	if err != nil {
		return models.Movie{}, err
	}

	movie := s.repo.Create(fields)
	slog.Info("movie created", "id", movie.ID, "title", movie.Title)

	s.invalidateCache(ctx)
	return movie, nil
}

// UpdateMovie validates payload as a partial movie and merges it into the stored one.
func (s *MovieService) UpdateMovie(ctx context.Context, id string, payload validation.Payload) (models.Movie, error) {
	patch, err := validation.ValidatePartialMovie(payload)
	if err != nil {
		return models.Movie{}, err
	}

	movie, err := s.repo.Update(id, patch)
	if err != nil {
		return models.Movie{}, fmt.Errorf("update movie %s: %w", id, err)
	}
	slog.Info("movie updated", "id", id)

	s.invalidateCache(ctx)
	return movie, nil
}

// DeleteMovie removes the movie with the given ID.
func (s *MovieService) DeleteMovie(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete movie %s: %w", id, err)
	}
	slog.Info("movie deleted", "id", id)

	s.invalidateCache(ctx)
	return nil
}

// ---- Redis Helpers ----

// cacheKey must be computed before the repository is read.
func (s *MovieService) cacheKey(kind, name string) string {
	return fmt.Sprintf("%sg%d:%s:%s", s.cachePrefix, s.generation.Load(), kind, name)
}

func (s *MovieService) getFromCache(ctx context.Context, key string, dst any) bool {
	if s.redis == nil {
		return false
	}
	cached, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		slog.Warn("discarding malformed cache entry", "key", key, "error", err)
		return false
	}
	slog.Debug("cache hit", "key", key)
	return true
}

func (s *MovieService) setCache(ctx context.Context, key string, value any, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

func (s *MovieService) invalidateCache(ctx context.Context) {
	s.generation.Add(1)
	if s.redis == nil {
		return
	}
	iter := s.redis.Scan(ctx, 0, s.cachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Error("failed to delete cache entry", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Error("failed to invalidate cache", "error", err)
		return
	}
	slog.Debug("Redis cache invalidated")
}
