package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placement/studentms/internal/app/models"
	"github.com/placement/studentms/internal/pkg/apperrors"
	"github.com/placement/studentms/internal/pkg/dberrors"
	"github.com/placement/studentms/internal/pkg/logger"
)

const studentColumns = "id, name, email, department, year, phone_number, created_at, updated_at"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student row. The database assigns the identifier and
// both timestamps. A unique violation on the email column is translated into
// apperrors.ErrEmailAlreadyExists so the constraint stays the authoritative
// guard against the probe/write race.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, department, year, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Email, student.Department, student.Year, student.PhoneNumber,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Department,
		&student.Year,
		&student.PhoneNumber,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByEmail retrieves a student by exact email match
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	var student models.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Department,
		&student.Year,
		&student.PhoneNumber,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return &student, nil
}

// EmailExists checks if any student holds the given email
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// EmailExistsExcept checks if a student other than the given one holds the email
func (r *StudentRepository) EmailExistsExcept(ctx context.Context, email string, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`, email, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email uniqueness: %w", err)
	}
	return exists, nil
}

// Exists checks if a student with the given ID exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update overwrites the mutable fields of an existing student and refreshes
// updated_at. Identifier and created_at are never touched.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, department = $3, year = $4, phone_number = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Email, student.Department, student.Year, student.PhoneNumber, student.ID,
	).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	return r.queryStudents(ctx, query)
}

// GetByDepartment retrieves all students in a department (exact match)
func (r *StudentRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE department = $1`
	return r.queryStudents(ctx, query, department)
}

// GetByYear retrieves all students in an academic year
func (r *StudentRepository) GetByYear(ctx context.Context, year int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE year = $1`
	return r.queryStudents(ctx, query, year)
}

// Search finds students whose name or department contains the term,
// case-insensitively.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE name ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%'`
	return r.queryStudents(ctx, query, term)
}

// GetPaged retrieves a page of students sorted by the given column and direction.
// sortColumn must already be validated against the sortable-column whitelist.
func (r *StudentRepository) GetPaged(ctx context.Context, offset uint64, limit int, sortColumn, direction string) ([]*models.Student, int64, error) {
	var totalItems int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&totalItems)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	if totalItems == 0 {
		return []*models.Student{}, 0, nil
	}

	builder := r.sb.Select(
		"id", "name", "email", "department", "year", "phone_number", "created_at", "updated_at",
	).
		From("students").
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction)).
		Limit(uint64(limit)).
		Offset(offset)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build paged students query: %w", err)
	}

	students, err := r.queryStudents(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return students, totalItems, nil
}

// SearchPaged retrieves a page of students whose name, department or email
// contains the term, case-insensitively.
func (r *StudentRepository) SearchPaged(ctx context.Context, term string, offset uint64, limit int, sortColumn, direction string) ([]*models.Student, int64, error) {
	match := squirrel.Or{
		squirrel.ILike{"name": "%" + term + "%"},
		squirrel.ILike{"department": "%" + term + "%"},
		squirrel.ILike{"email": "%" + term + "%"},
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("students").Where(match).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count search query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("error counting matching students: %w", err)
	}

	if totalItems == 0 {
		return []*models.Student{}, 0, nil
	}

	builder := r.sb.Select(
		"id", "name", "email", "department", "year", "phone_number", "created_at", "updated_at",
	).
		From("students").
		Where(match).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction)).
		Limit(uint64(limit)).
		Offset(offset)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build paged search query: %w", err)
	}

	students, err := r.queryStudents(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return students, totalItems, nil
}

// GetDistinctDepartments retrieves every department value that appears at
// least once, lexicographically ordered.
func (r *StudentRepository) GetDistinctDepartments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT department FROM students ORDER BY department`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// CountByDepartment counts students in a department, 0 when none match
func (r *StudentRepository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE department = $1`, department).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by department: %w", err)
	}
	return count, nil
}

// queryStudents runs a query returning full student rows and scans them
func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Department,
			&student.Year,
			&student.PhoneNumber,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
