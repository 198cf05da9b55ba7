package schedule

import (
	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

type SlotItemKind string

const (
	KindSchedule SlotItemKind = "schedule"
	KindDraft    SlotItemKind = "draft"
)

// SlotItem 是占用某个时段的一项排班或草稿，Kind 用于让前端区分两者的渲染方式
type SlotItem struct {
	Kind     SlotItemKind          `json:"kind"`
	Schedule *domain.Schedule      `json:"schedule,omitempty"`
	Draft    *domain.ScheduleDraft `json:"draft,omitempty"`
}

// Overlapping 返回与窗口 [windowStart, windowEnd) 相交的所有排班和草稿。
// 区间按左闭右开处理：恰好在窗口开始时刻结束的班次不算相交，
// 恰好在窗口开始时刻开始的班次算相交。
// 所有草稿无论 action 都会被返回，delete 草稿在发布前仍然占用原时段。
// 时间字段必须已经通过上游校验，这里不再处理格式错误。
func Overlapping(windowStart, windowEnd int32, schedules []*domain.Schedule, drafts []*domain.ScheduleDraft) []SlotItem {
	items := make([]SlotItem, 0)

	for _, s := range schedules {
		start, _ := ParseClock(s.StartTime)
		end, _ := ParseClock(s.EndTime)
		if start < windowEnd && end > windowStart {
			items = append(items, SlotItem{Kind: KindSchedule, Schedule: s})
		}
	}

	for _, d := range drafts {
		start, _ := ParseClock(d.StartTime)
		end, _ := ParseClock(d.EndTime)
		if start < windowEnd && end > windowStart {
			items = append(items, SlotItem{Kind: KindDraft, Draft: d})
		}
	}

	return items
}
