package helper

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
	"github.com/jerssonfuentes/geek-movies-app-main/services"
)

var defaultCategories = []models.Category{
	{Name: "Anime", Description: "Japanese animated films and series"},
	{Name: "Science Fiction", Description: "Science fiction films"},
	{Name: "Superheroes", Description: "Superhero and comic book films"},
	{Name: "Fantasy", Description: "Fantasy films"},
	{Name: "Horror", Description: "Horror and suspense films"},
	{Name: "Action", Description: "Action and adventure films"},
}

// EnsureCategories inserts the default category set when the directory is
// empty. Re-running it against a populated directory is a no-op.
func EnsureCategories(ctx context.Context, store services.CategoryStore) error {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, category := range defaultCategories {
		category.CreatedAt = now
		if _, err := store.Insert(ctx, &category); err != nil {
			return err
		}
	}
	return nil
}

// SeedMoviesFromCSV loads pre-approved movies from a CSV file with columns
// title,description,category,year,image_url. Rows whose title already
// exists are skipped, so the seed is safe to re-run.
func SeedMoviesFromCSV(ctx context.Context, path string, movieStore services.MovieStore, categoryStore services.CategoryStore, createdBy primitive.ObjectID) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return err
	}
	columns := make(map[string]int, len(header))
	for i, column := range header {
		columns[strings.TrimSpace(column)] = i
	}
	for _, required := range []string{"title", "description", "year"} {
		if _, ok := columns[required]; !ok {
			return errors.New(required + " column not found in CSV")
		}
	}

	now := time.Now().UTC()
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		title := strings.TrimSpace(row[columns["title"]])
		if title == "" {
			continue
		}
		existing, err := movieStore.FindByTitle(ctx, title)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[columns["year"]]))
		if err != nil {
			return fmt.Errorf("bad year for %q: %w", title, err)
		}

		movie := &models.Movie{
			Title:       title,
			Description: strings.TrimSpace(row[columns["description"]]),
			Year:        year,
			Status:      models.StatusApproved,
			CreatedBy:   createdBy,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if i, ok := columns["image_url"]; ok {
			movie.ImageURL = strings.TrimSpace(row[i])
		}
		if i, ok := columns["category"]; ok {
			if name := strings.TrimSpace(row[i]); name != "" {
				category, err := categoryStore.FindByName(ctx, name)
				if err != nil {
					return err
				}
				if category != nil {
					movie.CategoryID = &category.ID
				}
			}
		}

		if _, err := movieStore.Insert(ctx, movie); err != nil {
			return err
		}
	}
	return nil
}
