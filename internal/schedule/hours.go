package schedule

import (
	"math"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// WorkHours 计算一个班次扣除午休后的工时，保留两位小数
func WorkHours(startTime, endTime string, lunchMinutes int32) float64 {
	start, _ := ParseClock(startTime)
	end, _ := ParseClock(endTime)
	workMinutes := (end - start) - lunchMinutes

	return round2(float64(workMinutes) / 60)
}

// DailyHours 汇总某员工某一天的已发布工时。
// 只统计已发布的排班，草稿在发布前不计入工时。
func DailyHours(employeeID int64, date string, schedules []*domain.Schedule) float64 {
	total := 0.0
	for _, s := range schedules {
		if s.EmployeeID != employeeID || s.Date != date {
			continue
		}
		total += WorkHours(s.StartTime, s.EndTime, s.LunchMinutes)
	}

	return round2(total)
}

// DailyTotals 按天汇总某员工在 [startDate, endDate] 内每天的已发布工时。
// 日期是 YYYY-MM-DD 字符串，直接按字典序比较。
// 每天的小计独立保留两位小数，不会推迟到总计时才取整。
func DailyTotals(employeeID int64, startDate, endDate string, schedules []*domain.Schedule) map[string]float64 {
	totals := make(map[string]float64)
	for _, s := range schedules {
		if s.EmployeeID != employeeID || s.Date < startDate || s.Date > endDate {
			continue
		}
		totals[s.Date] = round2(totals[s.Date] + WorkHours(s.StartTime, s.EndTime, s.LunchMinutes))
	}

	return totals
}

// RangeHours 汇总某员工在 [startDate, endDate] 内的已发布工时总计，
// 总计是各天已取整小计的和
func RangeHours(employeeID int64, startDate, endDate string, schedules []*domain.Schedule) float64 {
	total := 0.0
	for _, daily := range DailyTotals(employeeID, startDate, endDate, schedules) {
		total += daily
	}

	return round2(total)
}
