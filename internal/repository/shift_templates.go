package repository

import (
	"context"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func (r *Repository) CreateShiftTemplate(tpl *domain.ShiftTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shift_templates (store_id, name, start_time, end_time, lunch_minutes, total_hours, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	args := []any{tpl.StoreID, tpl.Name, tpl.StartTime, tpl.EndTime, tpl.LunchMinutes, tpl.TotalHours, tpl.CreatedBy}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&tpl.ID, &tpl.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftTemplatesByStore(storeID int64) ([]*domain.ShiftTemplate, error) {
	query := `
		SELECT id, name, start_time, end_time, lunch_minutes, total_hours, created_by, created_at
		FROM shift_templates
		WHERE store_id = $1
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tpls := make([]*domain.ShiftTemplate, 0)
	for rows.Next() {
		tpl := &domain.ShiftTemplate{
			StoreID: storeID,
		}
		dst := []any{&tpl.ID, &tpl.Name, &tpl.StartTime, &tpl.EndTime, &tpl.LunchMinutes, &tpl.TotalHours, &tpl.CreatedBy, &tpl.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tpls = append(tpls, tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tpls, nil
}

func (r *Repository) GetShiftTemplateByID(id int64) (*domain.ShiftTemplate, error) {
	query := `
		SELECT store_id, name, start_time, end_time, lunch_minutes, total_hours, created_by, created_at
		FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tpl := &domain.ShiftTemplate{
		ID: id,
	}

	dst := []any{&tpl.StoreID, &tpl.Name, &tpl.StartTime, &tpl.EndTime, &tpl.LunchMinutes, &tpl.TotalHours, &tpl.CreatedBy, &tpl.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return tpl, nil
}

func (r *Repository) DeleteShiftTemplate(id int64) error {
	query := `
		DELETE FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
