package domain

import "time"

// ShiftTemplate 是可复用的班次时间模式，与具体员工和日期无关。
// 创建后不可修改。
type ShiftTemplate struct {
	ID           int64     `json:"id"`
	StoreID      int64     `json:"storeID"`
	Name         string    `json:"name"`
	StartTime    string    `json:"startTime"` // HH:MM
	EndTime      string    `json:"endTime"`   // HH:MM
	LunchMinutes int32     `json:"lunchMinutes"`
	TotalHours   float64   `json:"totalHours"` // 由时间字段推导，保留两位小数
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
