package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	store := &domain.Store{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := h.repository.CreateStore(store); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "stores_name_key":
				h.errorResponse(w, r, "门店名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建门店成功", store)
}

func (h *Handler) GetAllStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.repository.GetAllStores()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取门店列表成功", stores)
}

func (h *Handler) GetStore(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)
	h.successResponse(w, r, "获取门店成功", store)
}

func (h *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}

	if err := h.repository.UpdateStore(store); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "stores_name_key":
				h.errorResponse(w, r, "门店名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新门店成功", store)
}

func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	if err := h.repository.DeleteStore(store.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "users_store_id_fkey":
				h.errorResponse(w, r, "该门店下仍有员工，无法删除")
			case "schedules_store_id_fkey":
				h.errorResponse(w, r, "该门店下仍有排班，无法删除")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除门店成功", nil)
}

// GetStoreEmployees 返回门店的员工名录，供排班界面展示和选择
func (h *Handler) GetStoreEmployees(w http.ResponseWriter, r *http.Request) {
	store := r.Context().Value(StoreCtx).(*domain.Store)

	employees, err := h.repository.GetUsersByStore(store.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取门店员工成功", employees)
}
