package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/paiban-dev/store-scheduler/backend/internal/config"
	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleSystemAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/stores", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleSystemAdmin})).Post("/", h.CreateStore)
			r.With(h.RequiredRole([]domain.Role{domain.RoleSystemAdmin})).Get("/", h.GetAllStores)
			r.Route("/{storeID}", func(r chi.Router) {
				r.Use(h.myInfo)
				r.Use(h.store) // 加载门店并校验当前用户是否有权访问这家门店
				r.Get("/", h.GetStore)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSystemAdmin})).Patch("/", h.UpdateStore)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSystemAdmin})).Delete("/", h.DeleteStore)

				r.Get("/employees", h.GetStoreEmployees)

				r.Route("/shift-templates", func(r chi.Router) {
					r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager, domain.RoleSystemAdmin})).Post("/", h.CreateShiftTemplate)
					r.Get("/", h.GetShiftTemplates)
					r.Route("/{templateID}", func(r chi.Router) {
						r.Use(h.shiftTemplate)
						r.Get("/", h.GetShiftTemplate)
						r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager, domain.RoleSystemAdmin})).Delete("/", h.DeleteShiftTemplate)
					})
				})

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", h.GetSchedules)
					r.Get("/slots", h.GetSlotOccupancy)
					r.Get("/hours", h.GetEmployeeHours)
					r.With(h.RequiredRole([]domain.Role{domain.RoleSystemAdmin})).Delete("/{scheduleID}", h.DeleteSchedule)
				})

				r.Route("/drafts", func(r chi.Router) {
					r.Post("/", h.CreateDraft)
					r.Get("/", h.GetDrafts)
					r.Post("/reposition", h.RepositionDraft)
					r.Route("/{draftID}", func(r chi.Router) {
						r.Use(h.scheduleDraft)
						r.Patch("/", h.UpdateDraft)
						r.Delete("/", h.DeleteDraft)
					})
				})

				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager, domain.RoleSystemAdmin})).Post("/publish", h.PublishSchedules)
			})
		})
	})
}
