package utils

import (
	"fmt"
	"time"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
	"github.com/paiban-dev/store-scheduler/backend/internal/schedule"
)

// ValidateDate 检查日期是否为 YYYY-MM-DD 格式（门店本地日期，不带时区）
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("日期格式错误: %s", date)
	}
	return nil
}

// ValidateDateRange 检查日期区间的两端格式合法且起始不晚于结束
func ValidateDateRange(startDate, endDate string) error {
	if err := ValidateDate(startDate); err != nil {
		return err
	}
	if err := ValidateDate(endDate); err != nil {
		return err
	}
	// YYYY-MM-DD 可以直接按字典序比较
	if startDate > endDate {
		return fmt.Errorf("起始日期不能晚于结束日期")
	}
	return nil
}

// ValidateScheduleTimes 检查一条排班（或草稿）的时间字段：
// 结束时间必须晚于开始时间（不允许跨天），午休时长不能超过班次总时长
func ValidateScheduleTimes(date, startTime, endTime string, lunchMinutes int32) error {
	if err := ValidateDate(date); err != nil {
		return err
	}

	start, err := schedule.ParseClock(startTime)
	if err != nil {
		return fmt.Errorf("开始%s", err.Error())
	}
	end, err := schedule.ParseClock(endTime)
	if err != nil {
		return fmt.Errorf("结束%s", err.Error())
	}

	if end <= start {
		return fmt.Errorf("结束时间必须晚于开始时间")
	}

	if lunchMinutes < 0 {
		return fmt.Errorf("午休时长不能为负数")
	}
	if lunchMinutes > end-start {
		return fmt.Errorf("午休时长不能超过班次总时长")
	}

	return nil
}

// ValidateShiftTemplateTimes 检查班次模板的时间字段，约束与排班相同但不涉及日期
func ValidateShiftTemplateTimes(startTime, endTime string, lunchMinutes int32) error {
	return ValidateScheduleTimes("2000-01-01", startTime, endTime, lunchMinutes)
}

// ValidateDraft 检查草稿的完整约束。
// 除时间字段外还包括 action 与引用的配对关系：
// 当且仅当 action 为 update/delete 时才允许（且必须）携带被引用的排班 ID
func ValidateDraft(d *domain.ScheduleDraft) error {
	if err := ValidateScheduleTimes(d.Date, d.StartTime, d.EndTime, d.LunchMinutes); err != nil {
		return err
	}

	switch d.Action {
	case domain.DraftActionCreate:
		if d.ReferenceScheduleID != nil {
			return fmt.Errorf("create 草稿不能引用已发布的排班")
		}
	case domain.DraftActionUpdate, domain.DraftActionDelete:
		if d.ReferenceScheduleID == nil {
			return fmt.Errorf("%s 草稿必须引用已发布的排班", d.Action)
		}
	default:
		return fmt.Errorf("非法的草稿操作类型: %s", d.Action)
	}

	return nil
}
