package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/schedule"
)

// PublishDrafts 在一个数据库事务中把某门店 [startDate, endDate] 内的全部草稿
// 应用到已发布排班上，并删除被消费掉的草稿。草稿到修改的折叠规则见
// schedule.PlanPublish；任何一条草稿失败都会让整个事务回滚，不会残留部分修改。
//
// 草稿行和被引用的排班行都先用 FOR UPDATE 锁住，确保并发发布同一门店
// 重叠日期范围时被串行化。区间内没有草稿时是一次成功的空操作。
func (r *Repository) PublishDrafts(storeID int64, startDate, endDate string) (*domain.PublishResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// 锁住范围内的所有草稿
	query := `
		SELECT id, employee_id, date, start_time, end_time, lunch_minutes, action, reference_schedule_id, created_by
		FROM schedule_drafts
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		ORDER BY id
		FOR UPDATE
	`

	rows, err := tx.QueryContext(ctx, query, storeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
	}

	drafts := make([]*domain.ScheduleDraft, 0)
	for rows.Next() {
		d := &domain.ScheduleDraft{
			StoreID: storeID,
		}
		dst := []any{&d.ID, &d.EmployeeID, &d.Date, &d.StartTime, &d.EndTime, &d.LunchMinutes, &d.Action, &d.ReferenceScheduleID, &d.CreatedBy}
		if err := rows.Scan(dst...); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
		}
		drafts = append(drafts, d)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
	}

	// 锁住被引用的排班行，同时确认哪些引用仍然有效。
	// 被其他流程删掉的排班在这里现形，由折叠规则决定是回滚还是幂等跳过
	existing := make(map[int64]bool)
	for _, d := range drafts {
		if d.ReferenceScheduleID == nil {
			continue
		}
		id := *d.ReferenceScheduleID
		if _, ok := existing[id]; ok {
			continue
		}

		var locked int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM schedules WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			existing[id] = false
		case err != nil:
			return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
		default:
			existing[id] = true
		}
	}

	plan, err := schedule.PlanPublish(drafts, func(scheduleID int64) bool {
		return existing[scheduleID]
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
	}

	for _, d := range plan.Inserts {
		query := `
			INSERT INTO schedules (store_id, employee_id, date, start_time, end_time, lunch_minutes, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		args := []any{d.StoreID, d.EmployeeID, d.Date, d.StartTime, d.EndTime, d.LunchMinutes, d.CreatedBy}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
		}
	}

	for _, d := range plan.Updates {
		// 整体覆盖被引用排班的所有可变字段，而不是合并
		query := `
			UPDATE schedules
			SET
				employee_id = $1,
				date = $2,
				start_time = $3,
				end_time = $4,
				lunch_minutes = $5,
				version = version + 1
			WHERE id = $6
		`
		args := []any{d.EmployeeID, d.Date, d.StartTime, d.EndTime, d.LunchMinutes, *d.ReferenceScheduleID}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
		}
	}

	for _, scheduleID := range plan.Deletes {
		query := `
			DELETE FROM schedules WHERE id = $1
		`
		if _, err := tx.ExecContext(ctx, query, scheduleID); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
		}
	}

	// 所有草稿都已被消费
	for _, d := range drafts {
		query := `
			DELETE FROM schedule_drafts WHERE id = $1
		`
		if _, err := tx.ExecContext(ctx, query, d.ID); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPublishAborted, err)
	}

	return &domain.PublishResult{
		Created: len(plan.Inserts),
		Updated: len(plan.Updates),
		Deleted: len(plan.Deletes),
	}, nil
}
