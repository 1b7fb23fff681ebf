// Package validation checks incoming movie payloads against the catalog schema.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"movies-api/internal/models"
)

const (
	minYear = 1900
	maxYear = 2025
	minRate = 0
	maxRate = 10

	// maxSafeInt is the largest integer a JSON number carries without loss.
	maxSafeInt = 1<<53 - 1
)

// ErrInvalidBody is returned when the request body is not a JSON object.
var ErrInvalidBody = errors.New("invalid request body")

// FieldError describes one violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the failure side of a validation: every rule the payload broke.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Payload is a decoded JSON object whose values have not been interpreted yet.
type Payload map[string]json.RawMessage

// ParsePayload decodes body into a Payload. Anything but a JSON object is rejected.
func ParsePayload(body []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if p == nil {
		return nil, ErrInvalidBody
	}
	return p, nil
}

// ValidateMovie validates a creation payload. All fields are required except
// rate, which defaults to models.DefaultRate. An "id" key is ignored.
func ValidateMovie(p Payload) (models.MovieFields, error) {
	patch, errs := check(p, false)
	if len(errs) > 0 {
		return models.MovieFields{}, errs
	}

	fields := models.MovieFields{
		Title:    *patch.Title,
		Year:     *patch.Year,
		Director: *patch.Director,
		Duration: *patch.Duration,
		Rate:     models.DefaultRate,
		Poster:   *patch.Poster,
		Genre:    patch.Genre,
	}
	if patch.Rate != nil {
		fields.Rate = *patch.Rate
	}
	return fields, nil
}

// ValidatePartialMovie validates an update payload. Every field is optional,
// but present fields must satisfy the same rules as on creation.
func ValidatePartialMovie(p Payload) (models.MoviePatch, error) {
	patch, errs := check(p, true)
	if len(errs) > 0 {
		return models.MoviePatch{}, errs
	}
	return patch, nil
}

type checker struct {
	p       Payload
	partial bool
	errs    Errors
}

func check(p Payload, partial bool) (models.MoviePatch, Errors) {
	c := &checker{p: p, partial: partial}
	var patch models.MoviePatch

	if s, ok := c.str("title", "Movie title must be a string", "Movie title is required"); ok {
		if s == "" {
			c.fail("title", "Movie title must not be empty")
		} else {
			patch.Title = &s
		}
	}

	if n, ok := c.num("year"); ok {
		valid := c.integer("year", n)
		if n < minYear {
			c.fail("year", fmt.Sprintf("year must be greater than or equal to %d", minYear))
			valid = false
		}
		if n > maxYear {
			c.fail("year", fmt.Sprintf("year must be less than or equal to %d", maxYear))
			valid = false
		}
		if valid {
			y := int(n)
			patch.Year = &y
		}
	}

	if s, ok := c.str("director", "director must be a string", "director is required"); ok {
		patch.Director = &s
	}

	if n, ok := c.num("duration"); ok {
		valid := c.integer("duration", n)
		if n <= 0 {
			c.fail("duration", "duration must be greater than 0")
			valid = false
		}
		if valid {
			d := int(n)
			patch.Duration = &d
		}
	}

	// rate is optional in both modes; the creation default is applied by ValidateMovie.
	if raw, present := p["rate"]; present {
		if n, ok := c.numRaw("rate", raw); ok {
			valid := true
			if n < minRate {
				c.fail("rate", fmt.Sprintf("rate must be greater than or equal to %d", minRate))
				valid = false
			}
			if n > maxRate {
				c.fail("rate", fmt.Sprintf("rate must be less than or equal to %d", maxRate))
				valid = false
			}
			if valid {
				patch.Rate = &n
			}
		}
	}

	if s, ok := c.str("poster", "poster must be a string", "poster is required"); ok {
		if isURL(s) {
			patch.Poster = &s
		} else {
			c.fail("poster", "Poster must be a valid URL")
		}
	}

	if genres, ok := c.genres(); ok {
		patch.Genre = genres
	}

	return patch, c.errs
}

func (c *checker) fail(field, msg string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: msg})
}

// lookup returns the raw value of field. A missing field is only an error in full mode.
func (c *checker) lookup(field, requiredMsg string) (json.RawMessage, bool) {
	raw, present := c.p[field]
	if !present {
		if !c.partial {
			c.fail(field, requiredMsg)
		}
		return nil, false
	}
	return raw, true
}

func (c *checker) str(field, typeMsg, requiredMsg string) (string, bool) {
	raw, ok := c.lookup(field, requiredMsg)
	if !ok {
		return "", false
	}
	if kind(raw) != "string" {
		c.fail(field, typeMsg)
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		c.fail(field, typeMsg)
		return "", false
	}
	return s, true
}

func (c *checker) num(field string) (float64, bool) {
	raw, ok := c.lookup(field, field+" is required")
	if !ok {
		return 0, false
	}
	return c.numRaw(field, raw)
}

func (c *checker) numRaw(field string, raw json.RawMessage) (float64, bool) {
	if k := kind(raw); k != "number" {
		c.fail(field, fmt.Sprintf("%s must be a number, received %s", field, k))
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		c.fail(field, field+" must be a finite number")
		return 0, false
	}
	return n, true
}

func (c *checker) integer(field string, n float64) bool {
	if n != math.Trunc(n) {
		c.fail(field, field+" must be an integer")
		return false
	}
	if math.Abs(n) > maxSafeInt {
		c.fail(field, field+" must be a safe integer")
		return false
	}
	return true
}

func (c *checker) genres() ([]models.Genre, bool) {
	raw, ok := c.lookup("genre", "Movie genre is required")
	if !ok {
		return nil, false
	}
	if kind(raw) != "array" {
		c.fail("genre", "Movie genre must be an array of enum Genre")
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		c.fail("genre", "Movie genre must be an array of enum Genre")
		return nil, false
	}
	if len(items) == 0 {
		c.fail("genre", "Movie genre must contain at least one genre")
		return nil, false
	}

	out := make([]models.Genre, 0, len(items))
	valid := true
	for i, item := range items {
		var s string
		if kind(item) != "string" || json.Unmarshal(item, &s) != nil || !models.Genre(s).Valid() {
			c.fail(fmt.Sprintf("genre[%d]", i), "Invalid genre "+string(item)+", expected one of "+genreList())
			valid = false
			continue
		}
		out = append(out, models.Genre(s))
	}
	return out, valid
}

func genreList() string {
	names := make([]string, len(models.Genres))
	for i, g := range models.Genres {
		names[i] = string(g)
	}
	return strings.Join(names, " | ")
}

// kind names the JSON type of raw.
func kind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
