package models

import "time"

// AuditEntity identifies which kind of entity an audit event belongs to.
type AuditEntity string

const (
	AuditEntityCourse  AuditEntity = "COURSE"
	AuditEntitySection AuditEntity = "COURSE_SECTION"
)

// AuditEvent is one append-only entry in an entity's update trail.
type AuditEvent struct {
	ID         string      `json:"-" db:"id"`
	EntityType AuditEntity `json:"-" db:"entity_type"`
	EntityID   string      `json:"-" db:"entity_id"`
	ActorID    string      `json:"actorId" db:"actor_id"`
	RecordedAt time.Time   `json:"at" db:"recorded_at"`
}
