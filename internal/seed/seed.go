package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/repository"
	"github.com/paiban-dev/store-scheduler/backend/internal/utils"
)

// SeedDemoData 构造一套可以直接演示的完整数据：
// 两家门店，每家若干员工、几份班次模板、未来两周的已发布排班，
// 以及一批混合了 create/update/delete 的待发布草稿
func SeedDemoData(r *repository.Repository, password string, emailDomain string) {
	for i := 0; i < 2; i++ {
		store := utils.GenerateRandomStore()
		if err := r.CreateStore(store); err != nil {
			slog.Error("无法插入门店", "error", err)
			return
		}
		slog.Info("插入门店成功", "store", store.Name, "id", store.ID)

		// 员工
		employees := make([]*domain.User, 0, 8)
		for j := 0; j < 8; j++ {
			user, err := utils.GenerateRandomEmployee(password, emailDomain, store.ID)
			if err != nil {
				slog.Error("无法生成随机员工", "error", err)
				continue
			}
			if j == 0 {
				// 每家门店至少要有一个店长
				user.Role = domain.RoleStoreManager
			}
			if err := r.CreateUser(user); err != nil {
				slog.Error("无法插入员工", "error", err)
				continue
			}
			employees = append(employees, user)
		}
		if len(employees) == 0 {
			slog.Error("门店没有任何员工，跳过排班数据", "store", store.Name)
			continue
		}

		manager := employees[0]

		// 班次模板
		for j := 0; j < 3; j++ {
			tpl := utils.GenerateRandomShiftTemplate(store.ID, manager.ID)
			if err := r.CreateShiftTemplate(tpl); err != nil {
				slog.Error("无法插入班次模板", "error", err)
			}
		}

		// 未来两周的已发布排班，逐条走发布流程生成
		schedules := make([]*domain.Schedule, 0)
		for _, employee := range employees {
			for j := 0; j < 5; j++ {
				s := utils.GenerateRandomSchedule(store.ID, employee.ID, manager.ID, 14)
				if err := createPublishedSchedule(r, s); err != nil {
					slog.Error("无法插入排班", "error", err)
					continue
				}
				schedules = append(schedules, s)
			}
		}

		// 混合草稿：新增、改班、撤班
		for _, employee := range employees {
			draft := utils.GenerateRandomCreateDraft(store.ID, employee.ID, manager.ID, 14)
			if err := r.CreateDraft(draft); err != nil {
				slog.Error("无法插入 create 草稿", "error", err)
			}
		}

		for j := 0; j < len(schedules)/4; j++ {
			s := schedules[rand.Intn(len(schedules))]

			action := domain.DraftActionUpdate
			if rand.Intn(3) == 0 {
				action = domain.DraftActionDelete
			}

			draft := &domain.ScheduleDraft{
				StoreID:             s.StoreID,
				EmployeeID:          s.EmployeeID,
				Date:                s.Date,
				StartTime:           s.StartTime,
				EndTime:             s.EndTime,
				LunchMinutes:        s.LunchMinutes,
				Action:              action,
				ReferenceScheduleID: &s.ID,
				CreatedBy:           manager.ID,
			}
			if action == domain.DraftActionUpdate {
				// 往后挪一个小时，保持时长不变
				start, _ := time.Parse("15:04", s.StartTime)
				end, _ := time.Parse("15:04", s.EndTime)
				if end.Hour() < 22 {
					draft.StartTime = start.Add(time.Hour).Format("15:04")
					draft.EndTime = end.Add(time.Hour).Format("15:04")
				}
			}

			// 同一条排班只允许一条草稿引用，随机碰撞时直接忽略错误
			if err := r.CreateDraft(draft); err != nil {
				continue
			}
		}

		slog.Info("门店数据生成完毕", "store", store.Name, "employees", len(employees), "schedules", len(schedules))
	}
}

// createPublishedSchedule 通过发布流程插入一条排班：先建 create 草稿再发布当天
func createPublishedSchedule(r *repository.Repository, s *domain.Schedule) error {
	draft := &domain.ScheduleDraft{
		StoreID:      s.StoreID,
		EmployeeID:   s.EmployeeID,
		Date:         s.Date,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		LunchMinutes: s.LunchMinutes,
		Action:       domain.DraftActionCreate,
		CreatedBy:    s.CreatedBy,
	}

	if err := r.CreateDraft(draft); err != nil {
		return err
	}

	if _, err := r.PublishDrafts(s.StoreID, s.Date, s.Date); err != nil {
		return err
	}

	// 发布后把生成的排班 ID 回填，供后续草稿引用
	published, err := r.GetSchedulesByRange(s.StoreID, s.Date, s.Date, &s.EmployeeID)
	if err != nil {
		return err
	}
	for _, p := range published {
		if p.StartTime == s.StartTime && p.EndTime == s.EndTime {
			s.ID = p.ID
			break
		}
	}

	return nil
}
