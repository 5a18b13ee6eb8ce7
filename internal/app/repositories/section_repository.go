package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/dberrors"
)

// SectionRepository handles database operations for course sections and
// their meetings and instructor links.
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// CreateTx inserts a section with its meetings and instructor links.
func (r *SectionRepository) CreateTx(ctx context.Context, tx pgx.Tx, section *models.CourseSection) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}

	query := `
		INSERT INTO course_sections (id, course_id, capacity, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_on
	`

	err := tx.QueryRow(ctx, query,
		section.ID, section.CourseID, section.Capacity, section.CreatedBy,
	).Scan(&section.CreatedOn)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating section: %w", err)
	}

	if err := r.insertMeetings(ctx, tx, section.ID, section.Meetings); err != nil {
		return err
	}

	return r.insertInstructors(ctx, tx, section.ID, section.InstructorIDs)
}

// ReplaceDetailsTx updates capacity and replaces meetings and instructor
// links wholesale.
func (r *SectionRepository) ReplaceDetailsTx(ctx context.Context, tx pgx.Tx, section *models.CourseSection) error {
	query := `
		UPDATE course_sections
		SET capacity = $1
		WHERE id = $2
		RETURNING course_id, created_by, created_on
	`

	err := tx.QueryRow(ctx, query, section.Capacity, section.ID).Scan(
		&section.CourseID, &section.CreatedBy, &section.CreatedOn)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return apperrors.ErrSectionNotFound
		}
		return fmt.Errorf("error updating section: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM section_meetings WHERE section_id = $1`, section.ID); err != nil {
		return fmt.Errorf("error clearing meetings: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM section_instructors WHERE section_id = $1`, section.ID); err != nil {
		return fmt.Errorf("error clearing instructor links: %w", err)
	}

	if err := r.insertMeetings(ctx, tx, section.ID, section.Meetings); err != nil {
		return err
	}

	return r.insertInstructors(ctx, tx, section.ID, section.InstructorIDs)
}

func (r *SectionRepository) insertMeetings(ctx context.Context, tx pgx.Tx, sectionID string, meetings []models.Meeting) error {
	for i := range meetings {
		meeting := &meetings[i]
		if meeting.ID == "" {
			meeting.ID = uuid.NewString()
		}

		days := make([]string, len(meeting.DaysOfWeek))
		for j, d := range meeting.DaysOfWeek {
			days[j] = string(d)
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO section_meetings (id, section_id, days_of_week, start_time, end_time, location)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			meeting.ID, sectionID, days, meeting.StartTime, meeting.EndTime, meeting.Location)
		if err != nil {
			return fmt.Errorf("error creating meeting: %w", err)
		}
	}
	return nil
}

func (r *SectionRepository) insertInstructors(ctx context.Context, tx pgx.Tx, sectionID string, instructorIDs []string) error {
	for _, userID := range instructorIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO section_instructors (section_id, user_id)
			VALUES ($1, $2)`,
			sectionID, userID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error linking instructor: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a section with its meetings and instructor ids
func (r *SectionRepository) GetByID(ctx context.Context, id string) (*models.CourseSection, error) {
	query := `
		SELECT id, course_id, capacity, created_by, created_on
		FROM course_sections
		WHERE id = $1
	`

	var section models.CourseSection
	err := r.db.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.CourseID,
		&section.Capacity,
		&section.CreatedBy,
		&section.CreatedOn,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	if err := r.attachDetails(ctx, &section); err != nil {
		return nil, err
	}

	return &section, nil
}

// ListByCourse retrieves all sections of a course with their details
func (r *SectionRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.CourseSection, error) {
	query := `
		SELECT id, course_id, capacity, created_by, created_on
		FROM course_sections
		WHERE course_id = $1
		ORDER BY created_on
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying sections: %w", err)
	}
	defer rows.Close()

	sections := make([]*models.CourseSection, 0)
	for rows.Next() {
		var section models.CourseSection
		if err := rows.Scan(
			&section.ID,
			&section.CourseID,
			&section.Capacity,
			&section.CreatedBy,
			&section.CreatedOn,
		); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, section := range sections {
		if err := r.attachDetails(ctx, section); err != nil {
			return nil, err
		}
	}

	return sections, nil
}

// attachDetails loads meetings and instructor ids onto a section
func (r *SectionRepository) attachDetails(ctx context.Context, section *models.CourseSection) error {
	meetingRows, err := r.db.Query(ctx, `
		SELECT id, days_of_week, start_time, end_time, location
		FROM section_meetings
		WHERE section_id = $1`, section.ID)
	if err != nil {
		return fmt.Errorf("error querying meetings: %w", err)
	}
	defer meetingRows.Close()

	section.Meetings = section.Meetings[:0]
	for meetingRows.Next() {
		var meeting models.Meeting
		var days []string
		if err := meetingRows.Scan(&meeting.ID, &days, &meeting.StartTime, &meeting.EndTime, &meeting.Location); err != nil {
			return err
		}
		meeting.DaysOfWeek = make([]models.DayOfWeek, len(days))
		for i, d := range days {
			meeting.DaysOfWeek[i] = models.DayOfWeek(d)
		}
		section.Meetings = append(section.Meetings, meeting)
	}
	if err := meetingRows.Err(); err != nil {
		return err
	}

	instructorRows, err := r.db.Query(ctx, `
		SELECT user_id FROM section_instructors WHERE section_id = $1`, section.ID)
	if err != nil {
		return fmt.Errorf("error querying instructor links: %w", err)
	}
	defer instructorRows.Close()

	section.InstructorIDs = section.InstructorIDs[:0]
	for instructorRows.Next() {
		var userID string
		if err := instructorRows.Scan(&userID); err != nil {
			return err
		}
		section.InstructorIDs = append(section.InstructorIDs, userID)
	}
	return instructorRows.Err()
}

// ListInstructors retrieves the instructor user records of a section
func (r *SectionRepository) ListInstructors(ctx context.Context, sectionID string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.role, u.is_mock, u.created_at
		FROM users u
		JOIN section_instructors si ON si.user_id = u.id
		WHERE si.section_id = $1
	`

	rows, err := r.db.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := make([]*models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.Role,
			&user.IsMock,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, &user)
	}

	return instructors, rows.Err()
}

// DeleteTx removes a section with its meetings and instructor links, and
// returns the removed record.
func (r *SectionRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id string) (*models.CourseSection, error) {
	if _, err := tx.Exec(ctx, `DELETE FROM section_meetings WHERE section_id = $1`, id); err != nil {
		return nil, fmt.Errorf("error deleting meetings: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM section_instructors WHERE section_id = $1`, id); err != nil {
		return nil, fmt.Errorf("error deleting instructor links: %w", err)
	}

	var section models.CourseSection
	err := tx.QueryRow(ctx, `
		DELETE FROM course_sections
		WHERE id = $1
		RETURNING id, course_id, capacity, created_by, created_on`, id).Scan(
		&section.ID,
		&section.CourseID,
		&section.Capacity,
		&section.CreatedBy,
		&section.CreatedOn,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error deleting section: %w", err)
	}

	return &section, nil
}

// DeleteByCourseTx removes all sections of a course (with meetings and
// instructor links) and reports how many sections were removed.
func (r *SectionRepository) DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID string) (int64, error) {
	if _, err := tx.Exec(ctx, `
		DELETE FROM section_meetings
		WHERE section_id IN (SELECT id FROM course_sections WHERE course_id = $1)`, courseID); err != nil {
		return 0, fmt.Errorf("error deleting meetings: %w", err)
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM section_instructors
		WHERE section_id IN (SELECT id FROM course_sections WHERE course_id = $1)`, courseID); err != nil {
		return 0, fmt.Errorf("error deleting instructor links: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM course_sections WHERE course_id = $1`, courseID)
	if err != nil {
		return 0, fmt.Errorf("error deleting sections: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
