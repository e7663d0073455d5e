package school

import (
	"context"

	"schoolops/internal/core/domain/school"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxSchoolRepository struct {
	conn db.Connection
}

func NewPgxRepository(conn db.Connection) *PgxSchoolRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxSchoolRepository{conn: conn}
}

func (r *PgxSchoolRepository) Create(
	ctx context.Context,
	input school.CreateSchoolInput,
) (s school.School, err error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO school_data (school_name, location, reporting_branch, num_students)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, school_name, location, reporting_branch, num_students`,
		input.SchoolName,
		input.Location,
		input.ReportingBranch,
		input.NumStudents,
	)
	return decodeSchool(row)
}

func (r *PgxSchoolRepository) List(ctx context.Context) ([]school.School, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT id, school_name, location, reporting_branch, num_students
		 FROM school_data ORDER BY school_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schools := make([]school.School, 0)
	for rows.Next() {
		s, err := decodeSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

func (r *PgxSchoolRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT DISTINCT school_name FROM school_data ORDER BY school_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (r *PgxSchoolRepository) ListLocations(ctx context.Context, schoolName string) ([]string, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT DISTINCT location FROM school_data WHERE school_name = $1 ORDER BY location`,
		schoolName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (r *PgxSchoolRepository) Update(ctx context.Context, input school.UpdateSchoolInput) error {
	tag, err := r.conn.Exec(
		ctx,
		`UPDATE school_data
		 SET school_name = $1, location = $2, reporting_branch = $3, num_students = $4
		 WHERE id = $5`,
		input.SchoolName,
		input.Location,
		input.ReportingBranch,
		input.NumStudents,
		int64(input.ID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return school.ErrSchoolDoesNotExist
	}
	return nil
}

func (r *PgxSchoolRepository) Delete(ctx context.Context, id school.ID) (rowsAffected int64, err error) {
	tag, err := r.conn.Exec(ctx, `DELETE FROM school_data WHERE id = $1`, int64(id))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func decodeSchool(row pgx.Row) (s school.School, err error) {
	var (
		id              int64
		schoolName      string
		location        string
		reportingBranch string
		numStudents     string
	)
	if err := row.Scan(&id, &schoolName, &location, &reportingBranch, &numStudents); err != nil {
		return s, err
	}
	return school.School{
		ID:              school.ID(id),
		SchoolName:      schoolName,
		Location:        location,
		ReportingBranch: reportingBranch,
		NumStudents:     numStudents,
	}, nil
}

func scanStrings(rows pgx.Rows) ([]string, error) {
	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
