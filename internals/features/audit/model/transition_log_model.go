// file: internals/features/audit/model/transition_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransitionLog records every applied state transition: which row moved,
// from what to what, who asked, and the payload that came with the command.
// Appended in the same transaction as the status write.
type TransitionLog struct {
	TransitionLogID uuid.UUID `gorm:"column:transition_log_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"transition_log_id"`

	TransitionLogEntity   string    `gorm:"column:transition_log_entity;type:varchar(30);not null;index:ix_transition_log_entity" json:"transition_log_entity"`
	TransitionLogEntityID uuid.UUID `gorm:"column:transition_log_entity_id;type:uuid;not null;index" json:"transition_log_entity_id"`

	TransitionLogAction     string `gorm:"column:transition_log_action;type:varchar(30);not null" json:"transition_log_action"`
	TransitionLogFromStatus string `gorm:"column:transition_log_from_status;type:varchar(20);not null" json:"transition_log_from_status"`
	TransitionLogToStatus   string `gorm:"column:transition_log_to_status;type:varchar(20);not null" json:"transition_log_to_status"`

	// uuid.Nil actor means a system sweep
	TransitionLogActorUserID *uuid.UUID     `gorm:"column:transition_log_actor_user_id;type:uuid;index" json:"transition_log_actor_user_id,omitempty"`
	TransitionLogPayload     datatypes.JSON `gorm:"column:transition_log_payload;type:jsonb" json:"transition_log_payload,omitempty"`

	TransitionLogCreatedAt time.Time `gorm:"column:transition_log_created_at;not null;default:now();index:ix_transition_log_created_at" json:"transition_log_created_at"`
}

func (TransitionLog) TableName() string {
	return "transition_logs"
}

func (m *TransitionLog) BeforeCreate(tx *gorm.DB) (err error) {
	if m.TransitionLogCreatedAt.IsZero() {
		m.TransitionLogCreatedAt = time.Now()
	}
	return nil
}
