// Package main seeds the book catalog from a JSON file,
// replacing any existing books.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/avoronin/bookstore/internal/db"
	"github.com/avoronin/bookstore/internal/models"
	"github.com/avoronin/bookstore/internal/repository"
)

func main() {
	var (
		dsn  string
		file string
	)
	flag.StringVar(&dsn, "d", "", "db address")
	flag.StringVar(&file, "f", "books.json", "path to books JSON file")
	flag.Parse()

	_ = godotenv.Load()
	if dsn == "" {
		dsn = os.Getenv("DB_URL")
	}

	books, err := loadBooks(file)
	if err != nil {
		log.Fatalf("error loading books file: %v", err)
	}

	database, err := db.InitPostgres(dsn)
	if err != nil {
		log.Fatalf("cannot init database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()

	// Replace the whole catalog; IDs are reassigned on insert.
	if _, err := database.ExecContext(ctx, `DELETE FROM books`); err != nil {
		log.Fatalf("error clearing books: %v", err)
	}

	repo := repository.NewPostgresBookRepository(database)
	for _, book := range books {
		if _, err := repo.Create(ctx, book); err != nil {
			log.Fatalf("error inserting book %q: %v", book.Title, err)
		}
	}

	fmt.Printf("Seeded %d books\n", len(books))
}

// loadBooks reads and parses the catalog JSON file.
func loadBooks(file string) ([]models.Book, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}
