package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movies-api/internal/models"
	"movies-api/internal/repository"
	"movies-api/internal/service"
	"movies-api/internal/validation"
)

// MovieHandler handles HTTP requests for movies.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every field that failed validation.
type ValidationErrorResponse struct {
	Error validation.Errors `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movies-api",
	})
}

// ListMovies returns all movies, optionally filtered by genre.
// @Summary List movies
// @Tags movies
// @Produce json
// @Param genre query string false "Genre filter (case-insensitive)"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c fiber.Ctx) error {
	return c.JSON(h.svc.ListMovies(c.Context(), c.Query("genre")))
}

// GetMovie returns a single movie.
// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} models.MessageResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c fiber.Ctx) error {
	movie, err := h.svc.GetMovie(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(movie)
}

// CreateMovie validates the body and adds a new movie.
// @Summary Create movie
// @Tags movies
// @Accept json
// @Produce json
// @Success 201 {object} models.Movie
// @Failure 400 {object} ValidationErrorResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c fiber.Ctx) error {
	payload, err := validation.ParsePayload(c.Body())
	if err != nil {
		return h.writeError(c, err)
	}

	movie, err := h.svc.CreateMovie(c.Context(), payload)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movie)
}

// UpdateMovie applies a partial update to an existing movie.
// @Summary Update movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} models.MessageResponse
// @Router /movies/{id} [patch]
func (h *MovieHandler) UpdateMovie(c fiber.Ctx) error {
	payload, err := validation.ParsePayload(c.Body())
	if err != nil {
		return h.writeError(c, err)
	}

	movie, err := h.svc.UpdateMovie(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(movie)
}

// DeleteMovie removes a movie.
// @Summary Delete movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c fiber.Ctx) error {
	if err := h.svc.DeleteMovie(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: models.MsgMovieDeleted})
}

func (h *MovieHandler) writeError(c fiber.Ctx, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{Error: verrs})
	case errors.Is(err, validation.ErrInvalidBody):
		slog.Debug("rejected request body", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: validation.ErrInvalidBody.Error()})
	case errors.Is(err, repository.ErrMovieNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.MessageResponse{Message: models.MsgMovieNotFound})
	default:
		slog.Error("movie request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return err
	}
}
