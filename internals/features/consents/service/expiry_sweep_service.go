// file: internals/features/consents/service/expiry_sweep_service.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	consents "minhaescola_backend/internals/features/consents/model"
	"minhaescola_backend/internals/lifecycle"
)

// SweepExpired persists pending→expired for consents past their deadline.
// The pending precondition in the WHERE clause is the compare-and-swap: a
// consent a responsável decided a moment earlier no longer matches and is
// left alone. Safe to re-run, already-expired rows never match.
func SweepExpired(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&consents.Consent{}).
		Where("consent_status = ?", lifecycle.ConsentPending).
		Where("consent_expires_at IS NOT NULL AND consent_expires_at < ?", now).
		Updates(map[string]any{
			"consent_status":     lifecycle.ConsentExpired,
			"consent_updated_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[SWEEP] consents expired: %d", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
