package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/db"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// In-memory store fakes. Each records the mutating calls it receives so
// tests can assert that rejected requests never reach storage.

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	return fn(ctx, nil)
}

type fakeTermStore struct {
	terms   []*models.Term
	creates []*models.Term
	updates []*models.Term
}

func (f *fakeTermStore) Create(ctx context.Context, term *models.Term) error {
	term.ID = "term-created"
	f.creates = append(f.creates, term)
	f.terms = append(f.terms, term)
	return nil
}

func (f *fakeTermStore) GetByID(ctx context.Context, id string) (*models.Term, error) {
	for _, t := range f.terms {
		if t.ID == id {
			stored := *t
			return &stored, nil
		}
	}
	return nil, apperrors.ErrTermNotFound
}

func (f *fakeTermStore) GetAll(ctx context.Context) ([]*models.Term, error) {
	return f.terms, nil
}

func (f *fakeTermStore) GetCurrent(ctx context.Context, now time.Time) (*models.Term, error) {
	for _, t := range f.terms {
		if t.StartTime.Before(now) && t.EndTime.After(now) {
			return t, nil
		}
	}
	return nil, apperrors.ErrNoCurrentTerm
}

func (f *fakeTermStore) Update(ctx context.Context, term *models.Term) error {
	f.updates = append(f.updates, term)
	for i, t := range f.terms {
		if t.ID == term.ID {
			f.terms[i] = term
			return nil
		}
	}
	return apperrors.ErrTermNotFound
}

func (f *fakeTermStore) Delete(ctx context.Context, id string) (*models.Term, error) {
	for i, t := range f.terms {
		if t.ID == id {
			f.terms = append(f.terms[:i], f.terms[i+1:]...)
			return t, nil
		}
	}
	return nil, apperrors.ErrTermNotFound
}

type fakeCourseStore struct {
	courses map[string]*models.Course
	creates []*models.Course
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	course.ID = "course-created"
	if f.courses == nil {
		f.courses = make(map[string]*models.Course)
	}
	f.courses[course.ID] = course
	f.creates = append(f.creates, course)
	return nil
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) Search(ctx context.Context, terms []string, termID string, dept models.Department) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseStore) Update(ctx context.Context, id string, patch *models.Course) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if patch.Name != "" {
		course.Name = patch.Name
	}
	if patch.Description != "" {
		course.Description = patch.Description
	}
	if patch.Department != "" {
		course.Department = patch.Department
	}
	if patch.TermID != "" {
		course.TermID = patch.TermID
	}
	if patch.Code != 0 {
		course.Code = patch.Code
	}
	return course, nil
}

func (f *fakeCourseStore) DeleteTx(ctx context.Context, tx pgx.Tx, id string) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return course, nil
}

type fakeSectionStore struct {
	sections map[string]*models.CourseSection
}

func (f *fakeSectionStore) CreateTx(ctx context.Context, tx pgx.Tx, section *models.CourseSection) error {
	section.ID = "section-created"
	f.sections[section.ID] = section
	return nil
}

func (f *fakeSectionStore) ReplaceDetailsTx(ctx context.Context, tx pgx.Tx, section *models.CourseSection) error {
	stored, ok := f.sections[section.ID]
	if !ok {
		return apperrors.ErrSectionNotFound
	}
	section.CourseID = stored.CourseID
	f.sections[section.ID] = section
	return nil
}

func (f *fakeSectionStore) GetByID(ctx context.Context, id string) (*models.CourseSection, error) {
	section, ok := f.sections[id]
	if !ok {
		return nil, apperrors.ErrSectionNotFound
	}
	return section, nil
}

func (f *fakeSectionStore) ListByCourse(ctx context.Context, courseID string) ([]*models.CourseSection, error) {
	var out []*models.CourseSection
	for _, s := range f.sections {
		if s.CourseID == courseID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSectionStore) ListInstructors(ctx context.Context, sectionID string) ([]*models.User, error) {
	return nil, nil
}

func (f *fakeSectionStore) DeleteTx(ctx context.Context, tx pgx.Tx, id string) (*models.CourseSection, error) {
	section, ok := f.sections[id]
	if !ok {
		return nil, apperrors.ErrSectionNotFound
	}
	delete(f.sections, id)
	return section, nil
}

func (f *fakeSectionStore) DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID string) (int64, error) {
	var n int64
	for id, s := range f.sections {
		if s.CourseID == courseID {
			delete(f.sections, id)
			n++
		}
	}
	return n, nil
}

type fakeRegistrationStore struct {
	registrations []*models.Registration
	// sectionCourse maps section id to its course id, standing in for the
	// join the real store performs.
	sectionCourse map[string]string
	locks         []string
	creates       []*models.Registration
}

func (f *fakeRegistrationStore) courseOf(sectionID string) string {
	return f.sectionCourse[sectionID]
}

func (f *fakeRegistrationStore) AcquireCourseLockTx(ctx context.Context, tx pgx.Tx, userID, courseID string) error {
	f.locks = append(f.locks, userID+":"+courseID)
	return nil
}

func (f *fakeRegistrationStore) CountByUserAndCourseTx(ctx context.Context, tx pgx.Tx, userID, courseID string) (int64, error) {
	var n int64
	for _, r := range f.registrations {
		if r.UserID == userID && f.courseOf(r.SectionID) == courseID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegistrationStore) CreateTx(ctx context.Context, tx pgx.Tx, reg *models.Registration) error {
	reg.ID = "reg-created"
	f.creates = append(f.creates, reg)
	f.registrations = append(f.registrations, reg)
	return nil
}

func (f *fakeRegistrationStore) ListBySection(ctx context.Context, sectionID string) ([]*models.Registration, error) {
	var out []*models.Registration
	for _, r := range f.registrations {
		if r.SectionID == sectionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationStore) SetPriority(ctx context.Context, id string, priority bool) (*models.Registration, error) {
	for _, r := range f.registrations {
		if r.ID == id {
			r.Priority = priority
			return r, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (f *fakeRegistrationStore) DeleteByUserAndSection(ctx context.Context, userID, sectionID string) (int64, error) {
	var kept []*models.Registration
	var n int64
	for _, r := range f.registrations {
		if r.UserID == userID && r.SectionID == sectionID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.registrations = kept
	return n, nil
}

func (f *fakeRegistrationStore) DeleteBySectionTx(ctx context.Context, tx pgx.Tx, sectionID string) (int64, error) {
	var kept []*models.Registration
	var n int64
	for _, r := range f.registrations {
		if r.SectionID == sectionID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.registrations = kept
	return n, nil
}

func (f *fakeRegistrationStore) DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID string) (int64, error) {
	var kept []*models.Registration
	var n int64
	for _, r := range f.registrations {
		if f.courseOf(r.SectionID) == courseID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.registrations = kept
	return n, nil
}

type fakeUserStore struct {
	users   map[string]*models.User
	creates []*models.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = "user-created"
	if f.users == nil {
		f.users = make(map[string]*models.User)
	}
	f.users[user.ID] = user
	f.creates = append(f.creates, user)
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeAuditStore struct {
	events []models.AuditEvent
}

func (f *fakeAuditStore) Append(ctx context.Context, entity models.AuditEntity, entityID, actorID string) error {
	f.events = append(f.events, models.AuditEvent{
		EntityType: entity,
		EntityID:   entityID,
		ActorID:    actorID,
		RecordedAt: time.Now(),
	})
	return nil
}

func (f *fakeAuditStore) ListForEntity(ctx context.Context, entity models.AuditEntity, entityID string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	for _, e := range f.events {
		if e.EntityType == entity && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeAuditStore) DeleteForCourseTx(ctx context.Context, tx pgx.Tx, courseID string) error {
	return nil
}

func (f *fakeAuditStore) DeleteForSectionTx(ctx context.Context, tx pgx.Tx, sectionID string) error {
	return nil
}
