package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetrov/campusreg/internal/app/models"
)

// AuditRepository handles the append-only update trail of mutable entities.
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

// Append records one update event
func (r *AuditRepository) Append(ctx context.Context, entity models.AuditEntity, entityID, actorID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_events (id, entity_type, entity_id, actor_id)
		VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), entity, entityID, actorID)
	if err != nil {
		return fmt.Errorf("error appending audit event: %w", err)
	}
	return nil
}

// ListForEntity retrieves an entity's update trail in append order
func (r *AuditRepository) ListForEntity(ctx context.Context, entity models.AuditEntity, entityID string) ([]models.AuditEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, entity_type, entity_id, actor_id, recorded_at
		FROM audit_events
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY recorded_at`, entity, entityID)
	if err != nil {
		return nil, fmt.Errorf("error querying audit events: %w", err)
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0)
	for rows.Next() {
		var event models.AuditEvent
		if err := rows.Scan(&event.ID, &event.EntityType, &event.EntityID, &event.ActorID, &event.RecordedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// DeleteForCourseTx drops the trails of a course and its sections. Must run
// before the cascade removes the sections themselves.
func (r *AuditRepository) DeleteForCourseTx(ctx context.Context, tx pgx.Tx, courseID string) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM audit_events
		WHERE (entity_type = $1 AND entity_id = $2)
		   OR (entity_type = $3 AND entity_id IN (SELECT id FROM course_sections WHERE course_id = $2))`,
		models.AuditEntityCourse, courseID, models.AuditEntitySection)
	if err != nil {
		return fmt.Errorf("error deleting audit events: %w", err)
	}
	return nil
}

// DeleteForSectionTx drops the trail of one section.
func (r *AuditRepository) DeleteForSectionTx(ctx context.Context, tx pgx.Tx, sectionID string) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM audit_events
		WHERE entity_type = $1 AND entity_id = $2`,
		models.AuditEntitySection, sectionID)
	if err != nil {
		return fmt.Errorf("error deleting audit events: %w", err)
	}
	return nil
}
