package repository

import "movies-api/internal/models"

// SeedMovies returns the dataset the catalog starts with.
func SeedMovies() []models.Movie {
	return []models.Movie{
		{ID: "dcdd0fad-a94c-4810-8acc-5f108d3b18c3", MovieFields: models.MovieFields{
			Title: "The Shawshank Redemption", Year: 1994, Director: "Frank Darabont", Duration: 142,
			Poster: "https://i.ebayimg.com/images/g/4goAAOSwMyBe7hnQ/s-l1200.webp",
			Genre:  []models.Genre{models.GenreDrama}, Rate: 9.3,
		}},
		{ID: "c8a7d63f-3b04-44d3-9d95-8782fd7dcfaf", MovieFields: models.MovieFields{
			Title: "The Dark Knight", Year: 2008, Director: "Christopher Nolan", Duration: 152,
			Poster: "https://i.ebayimg.com/images/g/yokAAOSw8w1YARbm/s-l1200.jpg",
			Genre:  []models.Genre{models.GenreAction, models.GenreCrime, models.GenreDrama}, Rate: 9.0,
		}},
		{ID: "5ad1a235-0d9c-410a-b32b-220d91689a08", MovieFields: models.MovieFields{
			Title: "Inception", Year: 2010, Director: "Christopher Nolan", Duration: 148,
			Poster: "https://m.media-amazon.com/images/I/91Rc8cAmnAL._AC_UF1000,1000_QL80_.jpg",
			Genre:  []models.Genre{models.GenreAction, models.GenreAdventure, models.GenreSciFi}, Rate: 8.8,
		}},
		{ID: "241bf55d-b649-4109-af7c-0e6890ded3fc", MovieFields: models.MovieFields{
			Title: "Pulp Fiction", Year: 1994, Director: "Quentin Tarantino", Duration: 154,
			Poster: "https://www.themoviedb.org/t/p/original/vQWk5YBFWF4bZaofAbv0tShwBvQ.jpg",
			Genre:  []models.Genre{models.GenreCrime, models.GenreDrama}, Rate: 8.9,
		}},
		{ID: "9e6106f0-848b-4810-a11a-3d832a5610f9", MovieFields: models.MovieFields{
			Title: "Forrest Gump", Year: 1994, Director: "Robert Zemeckis", Duration: 142,
			Poster: "https://i.ebayimg.com/images/g/qR8AAOSwkvRZzuMD/s-l1600.jpg",
			Genre:  []models.Genre{models.GenreDrama, models.GenreRomance}, Rate: 8.8,
		}},
		{ID: "7e3fd5ab-60ff-4ae2-92b6-9597f0308d1f", MovieFields: models.MovieFields{
			Title: "Gladiator", Year: 2000, Director: "Ridley Scott", Duration: 155,
			Poster: "https://img.fruugo.com/product/0/60/14417600_max.jpg",
			Genre:  []models.Genre{models.GenreAction, models.GenreAdventure, models.GenreDrama}, Rate: 8.5,
		}},
		{ID: "c906673b-3948-4402-ac7f-73ac3a9e3105", MovieFields: models.MovieFields{
			Title: "The Matrix", Year: 1999, Director: "Lana Wachowski", Duration: 136,
			Poster: "https://i.ebayimg.com/images/g/QFQAAOSwAQpfjaA6/s-l1200.jpg",
			Genre:  []models.Genre{models.GenreAction, models.GenreSciFi}, Rate: 8.7,
		}},
		{ID: "b6e03689-cccd-478e-8565-d92f40813b13", MovieFields: models.MovieFields{
			Title: "Interstellar", Year: 2014, Director: "Christopher Nolan", Duration: 169,
			Poster: "https://m.media-amazon.com/images/I/91obuWzA3XL._AC_UF1000,1000_QL80_.jpg",
			Genre:  []models.Genre{models.GenreAdventure, models.GenreDrama, models.GenreSciFi}, Rate: 8.6,
		}},
		{ID: "aa391090-b938-42eb-b520-86ea0aa3917b", MovieFields: models.MovieFields{
			Title: "The Lord of the Rings: The Return of the King", Year: 2003, Director: "Peter Jackson", Duration: 201,
			Poster: "https://i.ebayimg.com/images/g/0hoAAOSwe7peaMLW/s-l1600.jpg",
			Genre:  []models.Genre{models.GenreAction, models.GenreAdventure, models.GenreDrama}, Rate: 8.9,
		}},
		{ID: "2e6900e2-0b48-4fb6-ad48-09c7086e54fe", MovieFields: models.MovieFields{
			Title: "The Lion King", Year: 1994, Director: "Roger Allers, Rob Minkoff", Duration: 88,
			Poster: "https://m.media-amazon.com/images/I/81BMmrwSFOL._AC_UF1000,1000_QL80_.jpg",
			Genre:  []models.Genre{models.GenreAnimation, models.GenreAdventure, models.GenreDrama}, Rate: 8.5,
		}},
		{ID: "04986507-b3ed-442c-8ae7-4c5df804f896", MovieFields: models.MovieFields{
			Title: "The Godfather", Year: 1972, Director: "Francis Ford Coppola", Duration: 175,
			Poster: "https://upload.wikimedia.org/wikipedia/en/1/1c/Godfather_ver1.jpg",
			Genre:  []models.Genre{models.GenreCrime, models.GenreDrama}, Rate: 9.2,
		}},
		{ID: "7d2832f8-c70a-410e-8963-4c93bf36cc9c", MovieFields: models.MovieFields{
			Title: "The Social Network", Year: 2010, Director: "David Fincher", Duration: 120,
			Poster: "https://upload.wikimedia.org/wikipedia/en/8/8c/The_Social_Network_film_poster.png",
			Genre:  []models.Genre{models.GenreBiography, models.GenreDrama}, Rate: 7.8,
		}},
	}
}
