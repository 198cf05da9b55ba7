package repository

import (
	"context"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

// GetDraftsByRange 返回某门店在 [startDate, endDate] 内的全部待发布草稿，
// employeeID 不为 nil 时只返回该员工的草稿
func (r *Repository) GetDraftsByRange(storeID int64, startDate, endDate string, employeeID *int64) ([]*domain.ScheduleDraft, error) {
	query := `
		SELECT id, employee_id, date, start_time, end_time, lunch_minutes, action, reference_schedule_id,
			created_by, created_at, updated_by, updated_at, version
		FROM schedule_drafts
		WHERE store_id = $1
			AND date >= $2 AND date <= $3
			AND ($4::bigint IS NULL OR employee_id = $4)
		ORDER BY date, start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, storeID, startDate, endDate, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := make([]*domain.ScheduleDraft, 0)
	for rows.Next() {
		d := &domain.ScheduleDraft{
			StoreID: storeID,
		}
		dst := []any{&d.ID, &d.EmployeeID, &d.Date, &d.StartTime, &d.EndTime, &d.LunchMinutes, &d.Action, &d.ReferenceScheduleID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedBy, &d.UpdatedAt, &d.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drafts, nil
}

func (r *Repository) GetDraftByID(id int64) (*domain.ScheduleDraft, error) {
	query := `
		SELECT store_id, employee_id, date, start_time, end_time, lunch_minutes, action, reference_schedule_id,
			created_by, created_at, updated_by, updated_at, version
		FROM schedule_drafts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	d := &domain.ScheduleDraft{
		ID: id,
	}

	dst := []any{&d.StoreID, &d.EmployeeID, &d.Date, &d.StartTime, &d.EndTime, &d.LunchMinutes, &d.Action, &d.ReferenceScheduleID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedBy, &d.UpdatedAt, &d.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return d, nil
}

// CreateDraft 插入一条草稿。
// schedule_drafts 在 reference_schedule_id 上有部分唯一索引
// （schedule_drafts_reference_schedule_id_key），同一条已发布排班
// 同时只允许存在一条引用它的草稿，违反时由调用方根据约束名处理。
func (r *Repository) CreateDraft(d *domain.ScheduleDraft) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO schedule_drafts (store_id, employee_id, date, start_time, end_time, lunch_minutes, action, reference_schedule_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	args := []any{d.StoreID, d.EmployeeID, d.Date, d.StartTime, d.EndTime, d.LunchMinutes, d.Action, d.ReferenceScheduleID, d.CreatedBy}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt, &d.Version); err != nil {
		return err
	}

	return nil
}

// UpdateDraft 在发布前就地修改一条草稿
func (r *Repository) UpdateDraft(d *domain.ScheduleDraft) error {
	query := `
		UPDATE schedule_drafts
		SET
			employee_id = $1,
			date = $2,
			start_time = $3,
			end_time = $4,
			lunch_minutes = $5,
			updated_by = $6,
			updated_at = now(),
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{d.EmployeeID, d.Date, d.StartTime, d.EndTime, d.LunchMinutes, d.UpdatedBy, d.ID, d.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&d.UpdatedAt, &d.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDraft(id int64) error {
	query := `
		DELETE FROM schedule_drafts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
