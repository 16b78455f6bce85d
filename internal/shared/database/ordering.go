package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"gorm.io/gorm"
)

const orderMismatch = "ORDER_MISMATCH" // errInfo

// ErrOrderMismatch is returned when a reorder request does not name exactly the stored rows
var ErrOrderMismatch = sharedError.NewDomainError(orderMismatch)

func init() {
	sharedError.RegisterDomainErrorResponse(orderMismatch, sharedError.ErrorResponse{
		Status:    http.StatusBadRequest,
		Code:      "ORDER-001",
		Message:   "정렬 대상이 현재 목록과 일치하지 않습니다. 새로고침 후 다시 시도해 주세요.",
		MessageEn: "The order does not match the current list. Refresh and try again.",
	})
}

// NextSortOrder returns the sort_order for a row appended after every existing row.
// Two concurrent creates can read the same maximum and share a sort_order; lists
// break the tie by id, and the next Reorder rewrites every position.
func NextSortOrder(ctx context.Context, db *gorm.DB, model any) (int, error) {
	var max sql.NullInt64
	err := db.WithContext(ctx).Model(model).Select("MAX(sort_order)").Row().Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("정렬 순서 조회 실패: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}

// Reorder stores the position of each id as its sort_order, so afterwards the
// positions are exactly 0..len(ids)-1 even if creates had produced duplicates.
// ids must contain every row of the table exactly once; call inside WithTransaction.
func Reorder(ctx context.Context, tx *gorm.DB, model any, ids []uint32) error {
	var existing []uint32
	if err := tx.WithContext(ctx).Model(model).Pluck("id", &existing).Error; err != nil {
		return fmt.Errorf("정렬 대상 조회 실패: %w", err)
	}

	if len(existing) != len(ids) {
		return fmt.Errorf("count stored=%d requested=%d %w", len(existing), len(ids), ErrOrderMismatch)
	}

	known := make(map[uint32]bool, len(existing))
	for _, id := range existing {
		known[id] = false
	}
	for _, id := range ids {
		seen, ok := known[id]
		if !ok || seen {
			return fmt.Errorf("id=%d %w", id, ErrOrderMismatch)
		}
		known[id] = true
	}

	for position, id := range ids {
		err := tx.WithContext(ctx).Model(model).
			Where("id = ?", id).
			Update("sort_order", position).Error
		if err != nil {
			return fmt.Errorf("정렬 순서 저장 실패 id=%d: %w", id, err)
		}
	}

	return nil
}
