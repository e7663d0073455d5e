package submission

import (
	"context"
	"time"

	"schoolops/internal/core/domain/submission"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxSubmissionRepository struct {
	conn db.Connection
}

func NewPgxRepository(conn db.Connection) *PgxSubmissionRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxSubmissionRepository{conn: conn}
}

func (r *PgxSubmissionRepository) Create(
	ctx context.Context,
	input submission.CreateSubmissionInput,
) (s submission.Submission, err error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO entries
		     (school_name, location, grade, term, workbook, count, remark, submitted_by, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, school_name, location, grade, term, workbook, count, remark,
		           submitted_by, submitted_at, delivered`,
		input.SchoolName,
		input.Location,
		input.Grade,
		input.Term,
		input.Workbook,
		input.Count,
		input.Remark,
		input.SubmittedBy,
		input.SubmittedAt,
	)
	return decodeSubmission(row)
}

func (r *PgxSubmissionRepository) List(ctx context.Context) ([]submission.Submission, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT id, school_name, location, grade, term, workbook, count, remark,
		        submitted_by, submitted_at, delivered
		 FROM entries ORDER BY submitted_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]submission.Submission, 0)
	for rows.Next() {
		s, err := decodeSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (r *PgxSubmissionRepository) Delete(ctx context.Context, id submission.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM entries WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return submission.ErrSubmissionDoesNotExist
	}
	return nil
}

func (r *PgxSubmissionRepository) MarkDelivered(
	ctx context.Context,
	ids []submission.ID,
	delivered string,
) (rowsAffected int64, err error) {
	rawIDs := make([]int64, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, int64(id))
	}
	tag, err := r.conn.Exec(
		ctx,
		`UPDATE entries SET delivered = $1 WHERE id = ANY($2)`,
		delivered,
		rawIDs,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func decodeSubmission(row pgx.Row) (s submission.Submission, err error) {
	var (
		id          int64
		schoolName  string
		location    string
		grade       string
		term        string
		workbook    string
		count       int
		remark      string
		submittedBy string
		submittedAt time.Time
		delivered   string
	)
	err = row.Scan(
		&id, &schoolName, &location, &grade, &term, &workbook,
		&count, &remark, &submittedBy, &submittedAt, &delivered,
	)
	if err != nil {
		return s, err
	}
	return submission.Submission{
		ID:          submission.ID(id),
		SchoolName:  schoolName,
		Location:    location,
		Grade:       grade,
		Term:        term,
		Workbook:    workbook,
		Count:       count,
		Remark:      remark,
		SubmittedBy: submittedBy,
		SubmittedAt: submittedAt,
		Delivered:   delivered,
	}, nil
}
