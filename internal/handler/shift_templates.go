package handler

import (
	"net/http"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/schedule"
	"github.com/paiban-dev/store-scheduler/backend/internal/utils"
)

func (h *Handler) GetShiftTemplates(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	tpls, err := h.repository.GetShiftTemplatesByStore(store.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次模板列表成功", tpls)
}

// CreateShiftTemplate 处理“存为模板”：把一组班次时间保存为可复用的模式。
// 模板创建后不可修改，也不会被自动删除。
func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name         string `json:"name" validate:"required"`
		StartTime    string `json:"startTime" validate:"required"`
		EndTime      string `json:"endTime" validate:"required"`
		LunchMinutes int32  `json:"lunchMinutes" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateShiftTemplateTimes(req.StartTime, req.EndTime, req.LunchMinutes); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tpl := &domain.ShiftTemplate{
		StoreID:      store.ID,
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		LunchMinutes: req.LunchMinutes,
		TotalHours:   schedule.WorkHours(req.StartTime, req.EndTime, req.LunchMinutes),
		CreatedBy:    myInfo.ID,
	}

	if err := h.repository.CreateShiftTemplate(tpl); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建班次模板成功", tpl)
}

func (h *Handler) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	tpl := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)
	h.successResponse(w, r, "获取班次模板成功", tpl)
}

func (h *Handler) DeleteShiftTemplate(w http.ResponseWriter, r *http.Request) {
	tpl := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	if err := h.repository.DeleteShiftTemplate(tpl.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除班次模板成功", nil)
}
