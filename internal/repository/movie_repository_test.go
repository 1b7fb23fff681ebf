package repository

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"movies-api/internal/models"
)

func newMovieFields(title string, genres ...models.Genre) models.MovieFields {
	return models.MovieFields{
		Title:    title,
		Year:     2020,
		Director: "D",
		Duration: 100,
		Rate:     models.DefaultRate,
		Poster:   "http://a.com/p.jpg",
		Genre:    genres,
	}
}

func TestSeedMovies_SatisfyInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range SeedMovies() {
		if m.ID == "" || seen[m.ID] {
			t.Errorf("seed movie %q has empty or duplicate id %q", m.Title, m.ID)
		}
		seen[m.ID] = true
		if m.Year < 1900 || m.Year > 2025 || m.Duration <= 0 || m.Rate < 0 || m.Rate > 10 || len(m.Genre) == 0 {
			t.Errorf("seed movie %q violates the schema: %+v", m.Title, m)
		}
		for _, g := range m.Genre {
			if !g.Valid() {
				t.Errorf("seed movie %q has invalid genre %q", m.Title, g)
			}
		}
	}
}

func TestListByGenre_CaseInsensitive(t *testing.T) {
	repo := NewMovieRepository(SeedMovies())

	got := repo.ListByGenre("sci-fi")
	var want []string
	for _, m := range repo.ListAll() {
		for _, g := range m.Genre {
			if strings.EqualFold(string(g), "Sci-Fi") {
				want = append(want, m.ID)
				break
			}
		}
	}

	if len(got) != len(want) || len(want) == 0 {
		t.Fatalf("expected %d sci-fi movies, got %d", len(want), len(got))
	}
	for i, m := range got {
		if m.ID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], m.ID)
		}
	}
}

func TestListByGenre_NoMatch(t *testing.T) {
	repo := NewMovieRepository(SeedMovies())

	got := repo.ListByGenre("western")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	repo := NewMovieRepository(nil)

	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m := repo.Create(newMovieFields(fmt.Sprintf("movie %d", i), models.GenreAction))
		if m.ID == "" || ids[m.ID] {
			t.Fatalf("duplicate or empty id %q", m.ID)
		}
		ids[m.ID] = true
	}
	if repo.Len() != 100 {
		t.Errorf("expected 100 movies, got %d", repo.Len())
	}
}

func TestCreate_IDNotReusedAfterDelete(t *testing.T) {
	repo := NewMovieRepository(nil)

	first := repo.Create(newMovieFields("first", models.GenreDrama))
	if err := repo.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second := repo.Create(newMovieFields("second", models.GenreDrama))
	if second.ID == first.ID {
		t.Errorf("id %s reused after delete", first.ID)
	}
}

func TestCreate_AppendsInOrder(t *testing.T) {
	repo := NewMovieRepository(SeedMovies())
	before := repo.Len()

	created := repo.Create(newMovieFields("last", models.GenreFantasy))
	all := repo.ListAll()
	if len(all) != before+1 || all[len(all)-1].ID != created.ID {
		t.Errorf("expected created movie at the end of the list")
	}
}

func TestUpdate_MergesPatch(t *testing.T) {
	repo := NewMovieRepository(nil)
	orig := repo.Create(newMovieFields("before", models.GenreAction))

	rate := 9.0
	updated, err := repo.Update(orig.ID, models.MoviePatch{Rate: &rate})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Rate != 9 {
		t.Errorf("expected rate 9, got %v", updated.Rate)
	}
	if updated.ID != orig.ID || updated.Title != orig.Title || updated.Year != orig.Year ||
		updated.Director != orig.Director || updated.Duration != orig.Duration || updated.Poster != orig.Poster {
		t.Errorf("unpatched fields changed: before %+v, after %+v", orig, updated)
	}

	stored, _ := repo.FindByID(orig.ID)
	if stored.Rate != 9 {
		t.Errorf("update not persisted, stored rate %v", stored.Rate)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewMovieRepository(SeedMovies())
	title := "x"
	if _, err := repo.Update("missing", models.MoviePatch{Title: &title}); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestDelete_SecondCallNotFound(t *testing.T) {
	repo := NewMovieRepository(SeedMovies())
	id := SeedMovies()[0].ID

	if err := repo.Delete(id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(id); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("second delete: expected ErrMovieNotFound, got %v", err)
	}
	if _, err := repo.FindByID(id); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected deleted movie to be gone, got %v", err)
	}
}

func TestReturnedMoviesDoNotAliasStore(t *testing.T) {
	repo := NewMovieRepository(SeedMovies())
	id := SeedMovies()[0].ID

	m, _ := repo.FindByID(id)
	m.Genre[0] = models.GenreFantasy
	m.Title = "changed"

	again, _ := repo.FindByID(id)
	if again.Genre[0] == models.GenreFantasy || again.Title == "changed" {
		t.Error("mutating a returned movie changed the store")
	}
}

func TestConcurrentCreates(t *testing.T) {
	repo := NewMovieRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Create(newMovieFields(fmt.Sprintf("m%d", i), models.GenreCrime))
			_ = repo.ListByGenre("crime")
		}(i)
	}
	wg.Wait()

	if repo.Len() != 50 {
		t.Errorf("expected 50 movies, got %d", repo.Len())
	}
}
