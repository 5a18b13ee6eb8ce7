package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// CourseService handles course CRUD, search and the deletion cascade
type CourseService struct {
	courseStore  CourseStore
	sectionStore SectionStore
	regStore     RegistrationStore
	auditStore   AuditStore
	termStore    TermStore
	txRunner     TxRunner
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseStore CourseStore,
	sectionStore SectionStore,
	regStore RegistrationStore,
	auditStore AuditStore,
	termStore TermStore,
	txRunner TxRunner,
) *CourseService {
	return &CourseService{
		courseStore:  courseStore,
		sectionStore: sectionStore,
		regStore:     regStore,
		auditStore:   auditStore,
		termStore:    termStore,
		txRunner:     txRunner,
	}
}

// CreateCourse validates and persists a new course, stamping the creator
// and opening its update trail.
func (s *CourseService) CreateCourse(ctx context.Context, actor *models.User, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !req.Department.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown department %q", req.Department))
	}

	course := &models.Course{
		TermID:      req.TermID,
		Department:  req.Department,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   actor.ID,
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}

	if err := s.auditStore.Append(ctx, models.AuditEntityCourse, course.ID, actor.ID); err != nil {
		return nil, err
	}
	course.Updates, _ = s.auditStore.ListForEntity(ctx, models.AuditEntityCourse, course.ID)

	return course, nil
}

// GetCourse retrieves a course with its sections (including instructors),
// term and update trail.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionStore.ListByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, section := range sections {
		instructors, err := s.sectionStore.ListInstructors(ctx, section.ID)
		if err != nil {
			return nil, err
		}
		section.Instructors = instructors
	}
	course.Sections = sections

	term, err := s.termStore.GetByID(ctx, course.TermID)
	if err == nil {
		course.Term = term
	}

	course.Updates, err = s.auditStore.ListForEntity(ctx, models.AuditEntityCourse, id)
	if err != nil {
		return nil, err
	}

	return course, nil
}

// SearchCourses retrieves courses matching all free-text terms, optionally
// filtered by term id and department.
func (s *CourseService) SearchCourses(ctx context.Context, terms []string, termID string, dept models.Department) ([]*models.Course, error) {
	if len(terms) == 0 {
		return nil, apperrors.NewValidationError("at least one search term is required")
	}
	if dept != "" && !dept.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown department %q", dept))
	}

	return s.courseStore.Search(ctx, terms, termID, dept)
}

// UpdateCourse applies a partial update and appends to the update trail.
func (s *CourseService) UpdateCourse(ctx context.Context, actor *models.User, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	patch := &models.Course{}
	if req.Name != nil {
		patch.Name = *req.Name
	}
	if req.TermID != nil {
		patch.TermID = *req.TermID
	}
	if req.Department != nil {
		if !req.Department.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown department %q", *req.Department))
		}
		patch.Department = *req.Department
	}
	if req.Code != nil {
		patch.Code = *req.Code
	}
	if req.Description != nil {
		patch.Description = *req.Description
	}

	course, err := s.courseStore.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if err := s.auditStore.Append(ctx, models.AuditEntityCourse, course.ID, actor.ID); err != nil {
		return nil, err
	}
	course.Updates, _ = s.auditStore.ListForEntity(ctx, models.AuditEntityCourse, course.ID)

	return course, nil
}

// DeleteCourse removes a course, its sections and their registrations as a
// single transaction and reports what was removed.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) (*dto.DeleteCourseResponse, error) {
	result := &dto.DeleteCourseResponse{}

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error

		if err = s.auditStore.DeleteForCourseTx(ctx, tx, id); err != nil {
			return err
		}

		result.RegistrationsDeleted, err = s.regStore.DeleteByCourseTx(ctx, tx, id)
		if err != nil {
			return err
		}

		result.SectionsDeleted, err = s.sectionStore.DeleteByCourseTx(ctx, tx, id)
		if err != nil {
			return err
		}

		result.Course, err = s.courseStore.DeleteTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
