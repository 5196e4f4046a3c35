// Command seed drops and repopulates the catalog collections (movies,
// theaters, showtimes), rebuilds indexes, and creates a demo account.
// Run it against a fresh database before starting the server:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/database"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, name := range []string{"movies", "theaters", "showtimes", "watchlist"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Fatalf("drop %s: %v", name, err)
		}
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("mongodb indexes: %v", err)
	}

	now := time.Now().UTC()

	movies := sampleMovies(now)
	if err := insertMovies(ctx, db, movies); err != nil {
		log.Fatalf("seed movies: %v", err)
	}
	theaters := sampleTheaters(now)
	if err := insertTheaters(ctx, db, theaters); err != nil {
		log.Fatalf("seed theaters: %v", err)
	}
	showtimes := sampleShowtimes(movies, theaters, now)
	if err := insertShowtimes(ctx, db, showtimes); err != nil {
		log.Fatalf("seed showtimes: %v", err)
	}
	if err := seedDemoUser(ctx, db, cfg.BcryptCost, now); err != nil {
		log.Fatalf("seed user: %v", err)
	}

	log.Printf("seeded %d movies, %d theaters, %d showtimes, demo user demo@example.com / password123",
		len(movies), len(theaters), len(showtimes))
}

func insertMovies(ctx context.Context, db *mongo.Database, ms []model.Movie) error {
	docs := make([]interface{}, len(ms))
	for i := range ms {
		docs[i] = ms[i]
	}
	_, err := db.Collection("movies").InsertMany(ctx, docs)
	return err
}

func insertTheaters(ctx context.Context, db *mongo.Database, ts []model.Theater) error {
	docs := make([]interface{}, len(ts))
	for i := range ts {
		docs[i] = ts[i]
	}
	_, err := db.Collection("theaters").InsertMany(ctx, docs)
	return err
}

func insertShowtimes(ctx context.Context, db *mongo.Database, ss []model.Showtime) error {
	docs := make([]interface{}, len(ss))
	for i := range ss {
		docs[i] = ss[i]
	}
	_, err := db.Collection("showtimes").InsertMany(ctx, docs)
	return err
}

func seedDemoUser(ctx context.Context, db *mongo.Database, cost int, now time.Time) error {
	hash, err := utils.HashPassword("password123", cost)
	if err != nil {
		return err
	}
	_, err = db.Collection("users").InsertOne(ctx, model.User{
		Email:     "demo@example.com",
		Password:  hash,
		Name:      "Demo User",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil // already seeded
	}
	return err
}

func sampleMovies(now time.Time) []model.Movie {
	mk := func(title, desc, poster string, genres []string, mpaa string, rating float64, year, dur int, cast []string, director, trailer string) model.Movie {
		return model.Movie{
			ID: primitive.NewObjectID(), Title: title, Description: desc, PosterURL: poster,
			Genres: genres, MpaaRating: mpaa, Rating: rating, ReleaseYear: year,
			DurationMinutes: dur, Cast: cast, Director: director, TrailerURL: trailer,
			CreatedAt: now, UpdatedAt: now,
		}
	}
	return []model.Movie{
		mk("The Shawshank Redemption",
			"Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			"https://m.media-amazon.com/images/M/MV5BNDE3ODcxYzMtY2YzZC00NmNlLWJiNDMtZDViZWM2MzIxZDYwXkEyXkFqcGdeQXVyNjAwNDUxODI@._V1_SX300.jpg",
			[]string{"Drama"}, "R", 4.9, 1994, 142,
			[]string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"}, "Frank Darabont",
			"https://www.youtube.com/watch?v=6hB3S9bIaco"),
		mk("The Godfather",
			"The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			"https://m.media-amazon.com/images/M/MV5BM2MyNjYxNmUtYTAwNi00MTYxLWJmNWYtYzZlODY3ZTk3OTFlXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
			[]string{"Crime", "Drama"}, "R", 4.9, 1972, 175,
			[]string{"Marlon Brando", "Al Pacino", "James Caan"}, "Francis Ford Coppola",
			"https://www.youtube.com/watch?v=sY1S34973zA"),
		mk("The Dark Knight",
			"When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			"https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_SX300.jpg",
			[]string{"Action", "Crime", "Drama"}, "PG-13", 4.8, 2008, 152,
			[]string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"}, "Christopher Nolan",
			"https://www.youtube.com/watch?v=EXeTwQWrcwY"),
		mk("Pulp Fiction",
			"The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
			"https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNTBlZi00MTRlLWFjM2ItYzViMjE3YzI5MjljXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
			[]string{"Crime", "Drama"}, "R", 4.8, 1994, 154,
			[]string{"John Travolta", "Uma Thurman", "Samuel L. Jackson"}, "Quentin Tarantino",
			"https://www.youtube.com/watch?v=s7EdQ4FqbhY"),
		mk("Inception",
			"A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			"https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_SX300.jpg",
			[]string{"Action", "Sci-Fi", "Thriller"}, "PG-13", 4.8, 2010, 148,
			[]string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page"}, "Christopher Nolan",
			"https://www.youtube.com/watch?v=YoHD9XEInc0"),
		mk("Forrest Gump",
			"The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75.",
			"https://m.media-amazon.com/images/M/MV5BNWIwODRlZTUtY2U3ZS00Yzg1LWJhNzYtMmZiYmEyNmU1NjMzXkEyXkFqcGdeQXVyMTQxNzMzNDI@._V1_SX300.jpg",
			[]string{"Drama", "Romance"}, "PG-13", 4.8, 1994, 142,
			[]string{"Tom Hanks", "Robin Wright", "Gary Sinise"}, "Robert Zemeckis",
			"https://www.youtube.com/watch?v=bLvqoHBptjg"),
		mk("Spirited Away",
			"During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits, and where humans are changed into beasts.",
			"https://m.media-amazon.com/images/M/MV5BMjlmZmI5MDctNDE2YS00YWE0LWE5ZWItZDBhYWQ0NTcxNWRhXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_SX300.jpg",
			[]string{"Animation", "Adventure", "Family"}, "PG", 4.7, 2001, 125,
			[]string{"Rumi Hiiragi", "Miyu Irino", "Mari Natsuki"}, "Hayao Miyazaki",
			"https://www.youtube.com/watch?v=ByXuk9QqQkk"),
		mk("Toy Story",
			"A cowboy doll is profoundly threatened and jealous when a new spaceman figure supplants him as top toy in a boy's room.",
			"https://m.media-amazon.com/images/M/MV5BMDU2ZWJlMjktMTRhMy00ZTA5LWEzNDgtYmNmZTEwZTViZWJkXkEyXkFqcGdeQXVyNDQ2OTk4MzI@._V1_SX300.jpg",
			[]string{"Animation", "Adventure", "Comedy"}, "G", 4.5, 1995, 81,
			[]string{"Tom Hanks", "Tim Allen", "Don Rickles"}, "John Lasseter",
			"https://www.youtube.com/watch?v=v-PjgYDrg70"),
	}
}

func sampleTheaters(now time.Time) []model.Theater {
	dist := func(v float64) *float64 { return &v }
	return []model.Theater{
		{ID: primitive.NewObjectID(), Name: "AMC Empire 25", Address: "234 W 42nd St", City: "New York", State: "NY", ZipCode: "10036", Distance: dist(1.2), CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), Name: "Regal Union Square", Address: "850 Broadway", City: "New York", State: "NY", ZipCode: "10003", Distance: dist(2.8), CreatedAt: now, UpdatedAt: now},
		{ID: primitive.NewObjectID(), Name: "Alamo Drafthouse Brooklyn", Address: "445 Albee Square W", City: "Brooklyn", State: "NY", ZipCode: "11201", Distance: dist(5.6), CreatedAt: now, UpdatedAt: now},
	}
}

// sampleShowtimes spreads a few screenings of every movie across the
// theaters over the next three days.
func sampleShowtimes(movies []model.Movie, theaters []model.Theater, now time.Time) []model.Showtime {
	slots := []string{"13:30", "16:15", "19:00", "21:45"}
	day := now.Truncate(24 * time.Hour)

	var out []model.Showtime
	for i, m := range movies {
		for d := 0; d < 3; d++ {
			date := day.AddDate(0, 0, d)
			for j, t := range theaters {
				out = append(out, model.Showtime{
					ID:        primitive.NewObjectID(),
					MovieID:   m.ID,
					TheaterID: t.ID,
					Date:      date,
					Time:      slots[(i+j+d)%len(slots)],
					CreatedAt: now,
					UpdatedAt: now,
				})
			}
		}
	}
	return out
}
