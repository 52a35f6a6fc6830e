package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
	"github.com/campushq/recruithub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for drive rosters
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, drive_id, first_name, last_name, email, department, registration_no, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.DriveID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Department,
		&student.RegistrationNo,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create adds a student to a drive's roster
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (drive_id, first_name, last_name, email, department, registration_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.DriveID, student.FirstName, student.LastName, student.Email, student.Department, student.RegistrationNo,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_drive_id_registration_no_key") {
			return apperrors.ErrRegistrationNoAlreadyUsed
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByDriveID retrieves one page of a drive's roster in insertion order
func (r *StudentRepository) GetByDriveID(ctx context.Context, driveID int64, offset uint64, limit int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE drive_id = $1 ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, driveID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountByDriveID returns the size of a drive's roster
func (r *StudentRepository) CountByDriveID(ctx context.Context, driveID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE drive_id = $1`, driveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// GetRosterWithRounds retrieves the complete roster of a drive with each
// student's full round history attached, in roster insertion order. The board
// builder depends on getting the whole roster in one call.
func (r *StudentRepository) GetRosterWithRounds(ctx context.Context, driveID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE drive_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, driveID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roster: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	byID := make(map[int64]*models.Student)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
		byID[student.ID] = student
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recordRows, err := r.db.Query(ctx, `
		SELECT id, student_id, drive_id, round_number, status, panel_id, evaluator_id, score, feedback, created_at, updated_at
		FROM round_records
		WHERE drive_id = $1
		ORDER BY student_id, created_at, id`, driveID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving round records: %w", err)
	}
	defer recordRows.Close()

	for recordRows.Next() {
		var record models.RoundRecord
		if err := recordRows.Scan(
			&record.ID,
			&record.StudentID,
			&record.DriveID,
			&record.RoundNumber,
			&record.Status,
			&record.PanelID,
			&record.EvaluatorID,
			&record.Score,
			&record.Feedback,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if student, ok := byID[record.StudentID]; ok {
			student.Rounds = append(student.Rounds, record)
		}
	}
	if err := recordRows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates a student's display attributes
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, department = $4, registration_no = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Department, student.RegistrationNo, student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_drive_id_registration_no_key") {
			return apperrors.ErrRegistrationNoAlreadyUsed
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student and their round history
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
