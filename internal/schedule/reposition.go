package schedule

import (
	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

// RepositionItem 是被拖动的对象：既可以是已发布的排班，也可以是尚未发布的草稿
// （delete 草稿除外，见 RepositionableDraft）。
// 拖动已发布排班时 ReferenceScheduleID 为其自身 ID；
// 拖动 update 草稿时沿用草稿原本的引用；拖动 create 草稿时为 nil。
type RepositionItem struct {
	EmployeeID          int64
	Date                string
	StartTime           string
	EndTime             string
	LunchMinutes        int32
	ReferenceScheduleID *int64
}

// RepositionableDraft 报告某个草稿是否允许被拖动。
// delete 草稿表示“撤掉被引用的排班”，它的时间字段只是被撤班次的快照，
// 拖动它会让草稿与被撤的排班对不上
func RepositionableDraft(action domain.DraftAction) bool {
	return action != domain.DraftActionDelete
}

type RepositionOutcome string

const (
	// OutcomeMoved 表示拖动产生了一个新的提案
	OutcomeMoved RepositionOutcome = "moved"
	// OutcomeNoOp 表示拖动没有改变任何东西，不应该创建或修改草稿
	OutcomeNoOp RepositionOutcome = "noop"
	// OutcomeRejected 表示拖动结果非法，所有状态保持不变
	OutcomeRejected RepositionOutcome = "rejected"
)

type RepositionResult struct {
	Outcome RepositionOutcome
	Reason  string                // Outcome 为 rejected 时的原因
	Draft   *domain.ScheduleDraft // Outcome 为 moved 时的提案，尚未持久化
}

// Reposition 把一次拖放换算成新的排班提案。
// 算法：
//  1. 保持原班次的时长不变
//  2. 将拖放位置对齐到 15 分钟刻度作为新的开始时间
//  3. 员工、日期、对齐后的开始时间都没变时直接短路返回 NoOp
//  4. 新的结束时间超过 23:59 时拒绝（不允许跨天）
//  5. 否则生成携带原午休时长的提案
//
// 产生的草稿只填充了时间相关字段和 action/引用，门店和操作人由调用方补全。
// 时间字段必须已经通过上游校验。
func Reposition(item RepositionItem, newEmployeeID int64, newDate string, dropMinutes int32) RepositionResult {
	origStart, _ := ParseClock(item.StartTime)
	origEnd, _ := ParseClock(item.EndTime)
	duration := origEnd - origStart

	newStart := QuantizeQuarterHour(dropMinutes)
	newEnd := newStart + duration

	if newEmployeeID == item.EmployeeID && newStart == origStart && newDate == item.Date {
		return RepositionResult{Outcome: OutcomeNoOp}
	}

	if newEnd > EndOfDayMinutes {
		return RepositionResult{
			Outcome: OutcomeRejected,
			Reason:  "班次不能超出当天结束时间",
		}
	}

	// 被拖动的对象引用着已发布的排班时，提案是对该排班的修改；
	// 否则被拖动的是一个还没发布的新增草稿，提案仍然是新增
	action := domain.DraftActionUpdate
	if item.ReferenceScheduleID == nil {
		action = domain.DraftActionCreate
	}

	return RepositionResult{
		Outcome: OutcomeMoved,
		Draft: &domain.ScheduleDraft{
			EmployeeID:          newEmployeeID,
			Date:                newDate,
			StartTime:           FormatClock(newStart),
			EndTime:             FormatClock(newEnd),
			LunchMinutes:        item.LunchMinutes,
			Action:              action,
			ReferenceScheduleID: item.ReferenceScheduleID,
		},
	}
}
