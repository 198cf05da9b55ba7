package repository

import (
	"context"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

// GetSchedulesByRange 返回某门店在 [startDate, endDate] 内的已发布排班，
// employeeID 不为 nil 时只返回该员工的排班
func (r *Repository) GetSchedulesByRange(storeID int64, startDate, endDate string, employeeID *int64) ([]*domain.Schedule, error) {
	query := `
		SELECT id, employee_id, date, start_time, end_time, lunch_minutes, created_by, created_at, version
		FROM schedules
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

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		s := &domain.Schedule{
			StoreID: storeID,
		}
		dst := []any{&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime, &s.LunchMinutes, &s.CreatedBy, &s.CreatedAt, &s.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.Schedule, error) {
	query := `
		SELECT store_id, employee_id, date, start_time, end_time, lunch_minutes, created_by, created_at, version
		FROM schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.Schedule{
		ID: id,
	}

	dst := []any{&s.StoreID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime, &s.LunchMinutes, &s.CreatedBy, &s.CreatedAt, &s.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return s, nil
}

// DeleteSchedule 直接删除一条已发布的排班。
// 正常流程应该走 delete 草稿加发布，这个方法留给管理端的兜底清理，
// 也是发布时出现“草稿引用的排班不存在”的来源。
func (r *Repository) DeleteSchedule(id int64) error {
	query := `
		DELETE FROM schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
