// file: internals/features/audit/service/transition_log_service.go
package service

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "minhaescola_backend/internals/features/audit/model"
	"minhaescola_backend/internals/lifecycle"
)

// Record appends one audit row inside tx. payload may be nil.
func Record(
	tx *gorm.DB,
	entity lifecycle.Entity,
	entityID uuid.UUID,
	action lifecycle.Action,
	from, to lifecycle.Status,
	actorID uuid.UUID,
	payload map[string]any,
) error {
	row := auditModel.TransitionLog{
		TransitionLogEntity:     string(entity),
		TransitionLogEntityID:   entityID,
		TransitionLogAction:     string(action),
		TransitionLogFromStatus: string(from),
		TransitionLogToStatus:   string(to),
	}
	if actorID != uuid.Nil {
		row.TransitionLogActorUserID = &actorID
	}
	if len(payload) > 0 {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return err
		}
		row.TransitionLogPayload = datatypes.JSON(raw)
	}
	return tx.Create(&row).Error
}
