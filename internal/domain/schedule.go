package domain

import "time"

// Schedule 是已发布的排班：某员工在某门店某一天的一个班次。
// 只能由发布操作创建、修改和删除，日常编辑都先落到 ScheduleDraft 上。
type Schedule struct {
	ID           int64     `json:"id"`
	StoreID      int64     `json:"storeID"`
	EmployeeID   int64     `json:"employeeID"`
	Date         string    `json:"date"`      // YYYY-MM-DD，门店本地日期，不带时区
	StartTime    string    `json:"startTime"` // HH:MM，24 小时制
	EndTime      string    `json:"endTime"`   // 必须晚于 StartTime，不允许跨天
	LunchMinutes int32     `json:"lunchMinutes"`
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

type DraftAction string

const (
	DraftActionCreate DraftAction = "create"
	DraftActionUpdate DraftAction = "update"
	DraftActionDelete DraftAction = "delete"
)

// ScheduleDraft 是尚未发布的排班变更提案。
// 草稿携带完整的目标状态而不是差量，delete 草稿也保留被删除班次的时间字段，方便审计和撤销。
// 约束：当且仅当 Action 不为 create 时 ReferenceScheduleID 必须存在。
type ScheduleDraft struct {
	ID                  int64       `json:"id"`
	StoreID             int64       `json:"storeID"`
	EmployeeID          int64       `json:"employeeID"`
	Date                string      `json:"date"`
	StartTime           string      `json:"startTime"`
	EndTime             string      `json:"endTime"`
	LunchMinutes        int32       `json:"lunchMinutes"`
	Action              DraftAction `json:"action"`
	ReferenceScheduleID *int64      `json:"referenceScheduleID"`
	CreatedBy           int64       `json:"createdBy"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedBy           *int64      `json:"updatedBy"`
	UpdatedAt           *time.Time  `json:"updatedAt"`
	Version             int32       `json:"-"`
}

// PublishResult 汇总一次发布实际应用的草稿数量。
type PublishResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}
