package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"schoolops/internal/core/domain/school"
	dbschool "schoolops/internal/db/school"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/xuri/excelize/v2"
)

var requiredColumns = []string{"School Name", "Location", "Books Reporting Branch"}

func main() {
	filePath := flag.String("file", "SchoolWise.xlsx", "path to the school catalog spreadsheet")
	dsn := flag.String("dsn", os.Getenv("POSTGRESQL_URL"), "PostgreSQL connection string")
	flag.Parse()

	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "error: -dsn or POSTGRESQL_URL must be set")
		os.Exit(1)
	}

	rows, err := readRows(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	pool, err := pgxpool.Connect(context.Background(), *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not connect to the database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	inserted, err := importSchools(context.Background(), dbschool.NewPgxRepository(pool), rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d school/location pairs.\n", inserted)
}

type catalogRow struct {
	School          string
	Location        string
	ReportingBranch string
}

func readRows(filePath string) ([]catalogRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filePath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rawRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}
	if len(rawRows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	columns := make(map[string]int)
	for ix, header := range rawRows[0] {
		columns[strings.TrimSpace(header)] = ix
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	rows := make([]catalogRow, 0, len(rawRows)-1)
	for _, rawRow := range rawRows[1:] {
		row := catalogRow{
			School:          cell(rawRow, columns["School Name"]),
			Location:        cell(rawRow, columns["Location"]),
			ReportingBranch: cell(rawRow, columns["Books Reporting Branch"]),
		}
		// Rows without a school or location are header noise or totals.
		if row.School == "" || row.Location == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(row []string, ix int) string {
	if ix >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[ix])
}

func importSchools(ctx context.Context, repo school.Repository, rows []catalogRow) (int, error) {
	seen := make(map[string]struct{})
	inserted := 0
	for _, row := range rows {
		key := row.School + "\x00" + row.Location
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		_, err := repo.Create(ctx, school.CreateSchoolInput{
			SchoolName:      row.School,
			Location:        row.Location,
			ReportingBranch: row.ReportingBranch,
		})
		if err != nil {
			return inserted, fmt.Errorf(
				"could not insert %s / %s: %w", row.School, row.Location, err,
			)
		}
		inserted++
	}
	return inserted, nil
}
