package models

import (
	"slices"
	"strings"
)

// Genre is one of the fixed movie genres.
type Genre string

const (
	GenreAction    Genre = "Action"
	GenreCrime     Genre = "Crime"
	GenreDrama     Genre = "Drama"
	GenreAdventure Genre = "Adventure"
	GenreSciFi     Genre = "Sci-Fi"
	GenreRomance   Genre = "Romance"
	GenreAnimation Genre = "Animation"
	GenreBiography Genre = "Biography"
	GenreFantasy   Genre = "Fantasy"
)

// Genres lists every accepted genre in declaration order.
var Genres = []Genre{
	GenreAction, GenreCrime, GenreDrama, GenreAdventure, GenreSciFi,
	GenreRomance, GenreAnimation, GenreBiography, GenreFantasy,
}

// Valid reports whether g is one of the accepted genres (exact match).
func (g Genre) Valid() bool {
	return slices.Contains(Genres, g)
}

// DefaultRate is applied when a new movie is created without a rate.
const DefaultRate = 5.0

// MovieFields holds every client-settable attribute of a movie.
type MovieFields struct {
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Director string  `json:"director"`
	Duration int     `json:"duration"`
	Rate     float64 `json:"rate"`
	Poster   string  `json:"poster"`
	Genre    []Genre `json:"genre"`
}

// Movie represents a movie stored in the catalog.
type Movie struct {
	ID string `json:"id"`
	MovieFields
}

// Clone returns a deep copy of m.
func (m Movie) Clone() Movie {
	m.Genre = slices.Clone(m.Genre)
	return m
}

// HasGenre reports whether the movie is tagged with genre, ignoring case.
func (m Movie) HasGenre(genre string) bool {
	want := strings.ToLower(genre)
	for _, g := range m.Genre {
		if strings.ToLower(string(g)) == want {
			return true
		}
	}
	return false
}

// MoviePatch is a partial update. Nil fields are left untouched.
type MoviePatch struct {
	Title    *string  `json:"title,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Director *string  `json:"director,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Poster   *string  `json:"poster,omitempty"`
	Genre    []Genre  `json:"genre,omitempty"`
}

// Apply merges the patch over m and returns the result. The ID is always preserved.
func (p MoviePatch) Apply(m Movie) Movie {
	out := m.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Year != nil {
		out.Year = *p.Year
	}
	if p.Director != nil {
		out.Director = *p.Director
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.Rate != nil {
		out.Rate = *p.Rate
	}
	if p.Poster != nil {
		out.Poster = *p.Poster
	}
	if p.Genre != nil {
		out.Genre = slices.Clone(p.Genre)
	}
	return out
}

// Empty reports whether the patch changes nothing.
func (p MoviePatch) Empty() bool {
	return p.Title == nil && p.Year == nil && p.Director == nil && p.Duration == nil &&
		p.Rate == nil && p.Poster == nil && p.Genre == nil
}

// MessageResponse is the body used for not-found and deletion confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	MsgMovieNotFound = "Movie not found"
	MsgMovieDeleted  = "Movie deleted"
)
