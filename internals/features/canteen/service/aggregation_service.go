// file: internals/features/canteen/service/aggregation_service.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	canteen "minhaescola_backend/internals/features/canteen/model"
	"minhaescola_backend/internals/lifecycle"
	"minhaescola_backend/internals/stats"
)

// =========================================================
// MONTHLY AGGREGATION — transactions → one transfer per school
// =========================================================

type periodTotalRow struct {
	SchoolID      uuid.UUID  `gorm:"column:school_id"`
	SchoolChainID *uuid.UUID `gorm:"column:school_chain_id"`
	Total         int64      `gorm:"column:total"`
	Count         int64      `gorm:"column:count"`
}

type periodItemRow struct {
	SchoolID uuid.UUID `gorm:"column:school_id"`
	ItemName string    `gorm:"column:item_name"`
	Quantity int64     `gorm:"column:quantity"`
	Total    int64     `gorm:"column:total"`
}

// AggregateMonth builds (or refreshes) one pending MonthlyTransfer per school
// from that month's canteen transactions. Re-running the same period only
// touches transfers still pending; anything already processing or settled
// keeps its figures.
func AggregateMonth(db *gorm.DB, month, year int) (int64, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var totals []periodTotalRow
	if err := db.Model(&canteen.CanteenTransaction{}).
		Select(`canteen_transaction_school_id AS school_id,
			canteen_transaction_school_chain_id AS school_chain_id,
			COALESCE(SUM(canteen_transaction_total_cents), 0) AS total,
			COUNT(*) AS count`).
		Where("canteen_transaction_occurred_at >= ? AND canteen_transaction_occurred_at < ?", from, to).
		Group("canteen_transaction_school_id, canteen_transaction_school_chain_id").
		Scan(&totals).Error; err != nil {
		return 0, err
	}
	if len(totals) == 0 {
		return 0, nil
	}

	var items []periodItemRow
	if err := db.Model(&canteen.CanteenTransaction{}).
		Select(`canteen_transaction_school_id AS school_id,
			canteen_transaction_item_name AS item_name,
			COALESCE(SUM(canteen_transaction_quantity), 0) AS quantity,
			COALESCE(SUM(canteen_transaction_total_cents), 0) AS total`).
		Where("canteen_transaction_occurred_at >= ? AND canteen_transaction_occurred_at < ?", from, to).
		Group("canteen_transaction_school_id, canteen_transaction_item_name").
		Scan(&items).Error; err != nil {
		return 0, err
	}

	breakdowns := make(map[uuid.UUID]datatypes.JSONMap, len(totals))
	for _, it := range items {
		b, ok := breakdowns[it.SchoolID]
		if !ok {
			b = datatypes.JSONMap{}
			breakdowns[it.SchoolID] = b
		}
		b[it.ItemName] = map[string]any{
			"quantity":    it.Quantity,
			"total_cents": it.Total,
		}
	}

	now := time.Now()
	rows := make([]canteen.MonthlyTransfer, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, canteen.MonthlyTransfer{
			MonthlyTransferSchoolID:         t.SchoolID,
			MonthlyTransferSchoolChainID:    t.SchoolChainID,
			MonthlyTransferMonth:            month,
			MonthlyTransferYear:             year,
			MonthlyTransferTotalCents:       t.Total,
			MonthlyTransferTransactionCount: t.Count,
			MonthlyTransferBreakdown:        breakdowns[t.SchoolID],
			MonthlyTransferStatus:           lifecycle.TransferPending,
			MonthlyTransferUpdatedAt:        now,
		})
	}

	res := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "monthly_transfer_school_id"},
			{Name: "monthly_transfer_month"},
			{Name: "monthly_transfer_year"},
		},
		// only pending transfers are refreshed; a transfer already handed to
		// the bank keeps the figures it was created with
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: "monthly_transfers", Name: "monthly_transfer_status"},
				Value:  string(lifecycle.TransferPending),
			},
		}},
		DoUpdates: clause.AssignmentColumns([]string{
			"monthly_transfer_total_cents",
			"monthly_transfer_transaction_count",
			"monthly_transfer_breakdown",
			"monthly_transfer_updated_at",
		}),
	}).Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	log.Printf("[SWEEP] canteen aggregation %02d/%d: %d transfers", month, year, res.RowsAffected)
	return res.RowsAffected, nil
}

// =========================================================
// TOP-SELLING ITEMS
// =========================================================

type ItemStat struct {
	ItemName   string
	Quantity   int64
	TotalCents int64
}

// TopSellingItems ranks a school's items by quantity sold in the period.
func TopSellingItems(db *gorm.DB, schoolID uuid.UUID, month, year, n int) ([]ItemStat, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var items []periodItemRow
	if err := db.Model(&canteen.CanteenTransaction{}).
		Select(`canteen_transaction_school_id AS school_id,
			canteen_transaction_item_name AS item_name,
			COALESCE(SUM(canteen_transaction_quantity), 0) AS quantity,
			COALESCE(SUM(canteen_transaction_total_cents), 0) AS total`).
		Where("canteen_transaction_school_id = ?", schoolID).
		Where("canteen_transaction_occurred_at >= ? AND canteen_transaction_occurred_at < ?", from, to).
		Group("canteen_transaction_school_id, canteen_transaction_item_name").
		Scan(&items).Error; err != nil {
		return nil, err
	}

	byQty := make(map[string]float64, len(items))
	byItem := make(map[string]periodItemRow, len(items))
	for _, it := range items {
		byQty[it.ItemName] = float64(it.Quantity)
		byItem[it.ItemName] = it
	}

	out := make([]ItemStat, 0, n)
	for _, r := range stats.TopN(byQty, n) {
		it := byItem[r.Key]
		out = append(out, ItemStat{ItemName: it.ItemName, Quantity: it.Quantity, TotalCents: it.Total})
	}
	return out, nil
}
