package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/schedule"
	"github.com/paiban-dev/store-scheduler/backend/internal/utils"
)

// parseEmployeeIDParam 解析可选的 employeeID 查询参数
func parseEmployeeIDParam(r *http.Request) (*int64, error) {
	param := r.URL.Query().Get("employeeID")
	if param == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return nil, errors.New("员工ID无效")
	}
	return &id, nil
}

func (h *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employeeID, err := parseEmployeeIDParam(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedules, err := h.repository.GetSchedulesByRange(store.ID, startDate, endDate, employeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班列表成功", schedules)
}

func (h *Handler) GetDrafts(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employeeID, err := parseEmployeeIDParam(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	drafts, err := h.repository.GetDraftsByRange(store.ID, startDate, endDate, employeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取草稿列表成功", drafts)
}

// GetSlotOccupancy 返回某一天内与指定时间窗口相交的所有排班和草稿，
// 用于渲染时段占用情况
func (h *Handler) GetSlotOccupancy(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	date := r.URL.Query().Get("date")
	if err := utils.ValidateDate(date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	windowStart, err := schedule.ParseClock(r.URL.Query().Get("start"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	windowEnd, err := schedule.ParseClock(r.URL.Query().Get("end"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if windowEnd <= windowStart {
		h.badRequest(w, r, errors.New("窗口结束时间必须晚于开始时间"))
		return
	}

	schedules, err := h.repository.GetSchedulesByRange(store.ID, date, date, nil)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	drafts, err := h.repository.GetDraftsByRange(store.ID, date, date, nil)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	items := schedule.Overlapping(windowStart, windowEnd, schedules, drafts)

	h.successResponse(w, r, "获取时段占用成功", items)
}

// GetEmployeeHours 返回某员工在日期区间内的已发布工时：
// 每天的小计和区间总计，草稿不计入
func (h *Handler) GetEmployeeHours(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	employeeIDParam := r.URL.Query().Get("employeeID")
	employeeID, err := strconv.ParseInt(employeeIDParam, 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("员工ID无效"))
		return
	}

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedules, err := h.repository.GetSchedulesByRange(store.ID, startDate, endDate, &employeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	resp := struct {
		Daily map[string]float64 `json:"daily"`
		Total float64            `json:"total"`
	}{
		Daily: schedule.DailyTotals(employeeID, startDate, endDate, schedules),
		Total: schedule.RangeHours(employeeID, startDate, endDate, schedules),
	}

	h.successResponse(w, r, "获取员工工时成功", resp)
}

// DeleteSchedule 不经过草稿流程直接删除一条已发布的排班，仅限系统管理员用于纠错。
// 引用这条排班的草稿不会被级联删除，发布时会触发整体回滚，需要店长自行清理
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	scheduleID, err := strconv.ParseInt(chi.URLParam(r, "scheduleID"), 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("排班ID无效"))
		return
	}

	s, err := h.repository.GetScheduleByID(scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "排班不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if s.StoreID != store.ID {
		h.errorResponse(w, r, "排班不存在")
		return
	}

	if err := h.repository.DeleteSchedule(scheduleID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班成功", nil)
}

func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		EmployeeID          int64  `json:"employeeID" validate:"required"`
		Date                string `json:"date" validate:"required"`
		StartTime           string `json:"startTime" validate:"required"`
		EndTime             string `json:"endTime" validate:"required"`
		LunchMinutes        int32  `json:"lunchMinutes" validate:"gte=0"`
		Action              string `json:"action" validate:"required,oneof=create update delete"`
		ReferenceScheduleID *int64 `json:"referenceScheduleID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft := &domain.ScheduleDraft{
		StoreID:             store.ID,
		EmployeeID:          req.EmployeeID,
		Date:                req.Date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		LunchMinutes:        req.LunchMinutes,
		Action:              domain.DraftAction(req.Action),
		ReferenceScheduleID: req.ReferenceScheduleID,
		CreatedBy:           myInfo.ID,
	}

	if err := utils.ValidateDraft(draft); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// update/delete 草稿创建时被引用的排班必须还存在且属于当前门店。
	// 这里只是尽早拦截，发布时仍然会再校验一次（引用可能在此之后失效）
	if draft.ReferenceScheduleID != nil {
		ref, err := h.repository.GetScheduleByID(*draft.ReferenceScheduleID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "引用的排班不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if ref.StoreID != store.ID {
			h.errorResponse(w, r, "引用的排班不存在")
			return
		}
	}

	if err := h.repository.CreateDraft(draft); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_drafts_reference_schedule_id_key":
				h.errorResponse(w, r, "该排班已存在待发布的草稿")
			case "schedule_drafts_employee_id_fkey":
				h.errorResponse(w, r, "指定的员工不存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建草稿成功", draft)
}

func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	draft := r.Context().Value(ScheduleDraftCtx).(*domain.ScheduleDraft)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		EmployeeID   *int64  `json:"employeeID"`
		Date         *string `json:"date"`
		StartTime    *string `json:"startTime"`
		EndTime      *string `json:"endTime"`
		LunchMinutes *int32  `json:"lunchMinutes" validate:"omitempty,gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EmployeeID != nil {
		draft.EmployeeID = *req.EmployeeID
	}
	if req.Date != nil {
		draft.Date = *req.Date
	}
	if req.StartTime != nil {
		draft.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		draft.EndTime = *req.EndTime
	}
	if req.LunchMinutes != nil {
		draft.LunchMinutes = *req.LunchMinutes
	}

	if err := utils.ValidateDraft(draft); err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft.UpdatedBy = &myInfo.ID

	if err := h.repository.UpdateDraft(draft); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新草稿失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新草稿成功", draft)
}

func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	draft := r.Context().Value(ScheduleDraftCtx).(*domain.ScheduleDraft)

	if err := h.repository.DeleteDraft(draft.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除草稿成功", nil)
}

// RepositionDraft 处理拖拽改班：把一次拖放换算成草稿。
// 被拖动的对象可以是已发布的排班（产生一条新的 update 草稿，
// 客户端应把原排班从本地渲染中移除，服务端数据在发布前保持不变），
// 也可以是已有的草稿（就地修改该草稿）。
func (h *Handler) RepositionDraft(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		ItemKind            string `json:"itemKind" validate:"required,oneof=schedule draft"`
		ItemID              int64  `json:"itemID" validate:"required"`
		NewEmployeeID       int64  `json:"newEmployeeID" validate:"required"`
		NewDate             string `json:"newDate" validate:"required"`
		DropPositionMinutes int32  `json:"dropPositionMinutes" validate:"gte=0,lte=1439"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateDate(req.NewDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	var item schedule.RepositionItem
	var sourceDraft *domain.ScheduleDraft

	switch schedule.SlotItemKind(req.ItemKind) {
	case schedule.KindSchedule:
		s, err := h.repository.GetScheduleByID(req.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "排班不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if s.StoreID != store.ID {
			h.errorResponse(w, r, "排班不存在")
			return
		}
		item = schedule.RepositionItem{
			EmployeeID:          s.EmployeeID,
			Date:                s.Date,
			StartTime:           s.StartTime,
			EndTime:             s.EndTime,
			LunchMinutes:        s.LunchMinutes,
			ReferenceScheduleID: &s.ID,
		}
	case schedule.KindDraft:
		d, err := h.repository.GetDraftByID(req.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "草稿不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if d.StoreID != store.ID {
			h.errorResponse(w, r, "草稿不存在")
			return
		}
		if !schedule.RepositionableDraft(d.Action) {
			h.errorResponse(w, r, "撤班草稿不能被拖动")
			return
		}
		sourceDraft = d
		item = schedule.RepositionItem{
			EmployeeID:          d.EmployeeID,
			Date:                d.Date,
			StartTime:           d.StartTime,
			EndTime:             d.EndTime,
			LunchMinutes:        d.LunchMinutes,
			ReferenceScheduleID: d.ReferenceScheduleID,
		}
	}

	result := schedule.Reposition(item, req.NewEmployeeID, req.NewDate, req.DropPositionMinutes)

	switch result.Outcome {
	case schedule.OutcomeNoOp:
		h.successResponse(w, r, "位置未发生变化", map[string]any{"outcome": result.Outcome})
		return
	case schedule.OutcomeRejected:
		h.errorResponse(w, r, result.Reason)
		return
	}

	if sourceDraft != nil {
		// 被拖动的是已有草稿，就地修改
		sourceDraft.EmployeeID = result.Draft.EmployeeID
		sourceDraft.Date = result.Draft.Date
		sourceDraft.StartTime = result.Draft.StartTime
		sourceDraft.EndTime = result.Draft.EndTime
		sourceDraft.UpdatedBy = &myInfo.ID

		if err := h.repository.UpdateDraft(sourceDraft); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "更新草稿失败，请重试")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.successResponse(w, r, "拖拽改班成功", map[string]any{"outcome": result.Outcome, "draft": sourceDraft})
		return
	}

	// 被拖动的是已发布排班，产生一条新的 update 草稿
	draft := result.Draft
	draft.StoreID = store.ID
	draft.CreatedBy = myInfo.ID

	if err := h.repository.CreateDraft(draft); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_drafts_reference_schedule_id_key":
				h.errorResponse(w, r, "该排班已存在待发布的草稿")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "拖拽改班成功", map[string]any{"outcome": result.Outcome, "draft": draft})
}

// PublishSchedules 原子地发布日期区间内的全部草稿。
// 任何一条草稿失败都会让整个区间回滚，此时客户端应丢弃本地的乐观投影，
// 重新拉取排班和草稿两份数据
func (h *Handler) PublishSchedules(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	var req struct {
		StartDate string `json:"startDate" validate:"required"`
		EndDate   string `json:"endDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	result, err := h.repository.PublishDrafts(store.ID, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleNotFound):
			h.errorResponse(w, r, "部分草稿引用的排班已被删除，本次发布已全部回滚，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "发布成功", result)
}
