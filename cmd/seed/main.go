// Command seed bulk-loads catalogue entries from a CSV file.
//
// The CSV has a header row and the columns:
//
//	title,author,genre,rating,image_url,description
//
// image_url and description may be empty.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/store/sqlite"
)

func main() {
	dbPath := flag.String("db", "", "Path to the SQLite database file")
	csvPath := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *dbPath == "" || *csvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -db <database file> -file <csv file>")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := sqlite.Open(*dbPath, logger)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer s.Close() //nolint:errcheck // exiting anyway

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Error("Failed to open CSV file", "error", err)
		os.Exit(1)
	}
	defer f.Close() //nolint:errcheck // read-only file

	imported, err := importBooks(context.Background(), s, f)
	if err != nil {
		logger.Error("Import failed", "imported", imported, "error", err)
		os.Exit(1)
	}

	logger.Info("Import complete", "imported", imported)
}

// importBooks reads CSV records and inserts a book per row. It stops at the
// first malformed row so a bad file is not half-imported silently.
func importBooks(ctx context.Context, s *sqlite.Store, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 6

	// Header row.
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return imported, nil
		}
		if err != nil {
			return imported, fmt.Errorf("reading row %d: %w", imported+2, err)
		}

		rating, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return imported, fmt.Errorf("row %d: invalid rating %q: %w", imported+2, record[3], err)
		}
		if rating < 0 || rating > 5 {
			return imported, fmt.Errorf("row %d: rating %v out of range", imported+2, rating)
		}

		book := &domain.Book{
			Title:       record[0],
			Author:      record[1],
			Genre:       record[2],
			Rating:      rating,
			ImageURL:    record[4],
			Description: record[5],
		}
		if book.Title == "" || book.Author == "" || book.Genre == "" {
			return imported, fmt.Errorf("row %d: title, author and genre are required", imported+2)
		}

		if err := s.CreateBook(ctx, book); err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		imported++
	}
}
