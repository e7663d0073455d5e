package workbook

import (
	"context"

	"schoolops/internal/core/domain/workbook"
	"schoolops/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxWorkbookRepository struct {
	conn db.Connection
}

func NewPgxRepository(conn db.Connection) *PgxWorkbookRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxWorkbookRepository{conn: conn}
}

func (r *PgxWorkbookRepository) Create(
	ctx context.Context,
	input workbook.CreateWorkbookInput,
) (w workbook.Workbook, err error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO workbook_status (grade, workbook_name, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, grade, workbook_name, quantity`,
		input.Grade,
		input.Name,
		input.Quantity,
	)
	return decodeWorkbook(row)
}

func (r *PgxWorkbookRepository) List(ctx context.Context) ([]workbook.Workbook, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT id, grade, workbook_name, quantity FROM workbook_status ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workbooks := make([]workbook.Workbook, 0)
	for rows.Next() {
		w, err := decodeWorkbook(rows)
		if err != nil {
			return nil, err
		}
		workbooks = append(workbooks, w)
	}
	return workbooks, rows.Err()
}

func (r *PgxWorkbookRepository) ListGrades(ctx context.Context) ([]string, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT DISTINCT grade FROM workbook_status ORDER BY grade`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (r *PgxWorkbookRepository) ListNamesByGrade(ctx context.Context, grade string) ([]string, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT DISTINCT workbook_name FROM workbook_status WHERE grade = $1 ORDER BY workbook_name`,
		grade,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (r *PgxWorkbookRepository) UpdateQuantity(ctx context.Context, id workbook.ID, quantity int) error {
	tag, err := r.conn.Exec(
		ctx,
		`UPDATE workbook_status SET quantity = $1 WHERE id = $2`,
		quantity,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workbook.ErrWorkbookDoesNotExist
	}
	return nil
}

func (r *PgxWorkbookRepository) Delete(ctx context.Context, id workbook.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM workbook_status WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workbook.ErrWorkbookDoesNotExist
	}
	return nil
}

func decodeWorkbook(row pgx.Row) (w workbook.Workbook, err error) {
	var (
		id       int64
		grade    string
		name     string
		quantity int
	)
	if err := row.Scan(&id, &grade, &name, &quantity); err != nil {
		return w, err
	}
	return workbook.Workbook{
		ID:       workbook.ID(id),
		Grade:    grade,
		Name:     name,
		Quantity: quantity,
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
