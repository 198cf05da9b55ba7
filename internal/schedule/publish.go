package schedule

import (
	"fmt"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

// PublishPlan 是一次发布要应用到已发布排班上的全部修改。
// 三个切片合起来与被消费的草稿对应：每条草稿恰好产生一次新增、
// 一次覆盖或至多一次删除（引用已失效的 delete 草稿不产生修改）。
type PublishPlan struct {
	Inserts []*domain.ScheduleDraft
	Updates []*domain.ScheduleDraft
	Deletes []int64 // 要删除的排班 ID
}

// PlanPublish 把一批草稿折叠成发布计划，exists 报告某条已发布排班当前是否仍然存在：
//   - create 草稿计入新增
//   - update 草稿在引用仍然存在时计入覆盖，引用失效时整批失败
//   - delete 草稿在引用仍然存在时计入删除，引用失效时视为已完成（幂等，不计数）
//
// 返回错误时不携带部分计划，调用方不应应用任何修改。
func PlanPublish(drafts []*domain.ScheduleDraft, exists func(scheduleID int64) bool) (*PublishPlan, error) {
	plan := &PublishPlan{}

	for _, d := range drafts {
		switch d.Action {
		case domain.DraftActionCreate:
			plan.Inserts = append(plan.Inserts, d)
		case domain.DraftActionUpdate:
			if d.ReferenceScheduleID == nil {
				return nil, fmt.Errorf("草稿 %d 缺少被引用的排班", d.ID)
			}
			if !exists(*d.ReferenceScheduleID) {
				return nil, fmt.Errorf("草稿 %d: %w", d.ID, domain.ErrScheduleNotFound)
			}
			plan.Updates = append(plan.Updates, d)
		case domain.DraftActionDelete:
			if d.ReferenceScheduleID == nil {
				return nil, fmt.Errorf("草稿 %d 缺少被引用的排班", d.ID)
			}
			if exists(*d.ReferenceScheduleID) {
				plan.Deletes = append(plan.Deletes, *d.ReferenceScheduleID)
			}
		default:
			return nil, fmt.Errorf("草稿 %d 的操作类型非法: %s", d.ID, d.Action)
		}
	}

	return plan, nil
}
