package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func hoursSchedule(employeeID int64, date, start, end string, lunch int32) *domain.Schedule {
	return &domain.Schedule{
		StoreID:      1,
		EmployeeID:   employeeID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		LunchMinutes: lunch,
	}
}

func TestWorkHours(t *testing.T) {
	// 09:00-17:00 扣除 30 分钟午休是 7.5 小时
	assert.Equal(t, 7.5, WorkHours("09:00", "17:00", 30))
	assert.Equal(t, 8.0, WorkHours("09:00", "17:00", 0))
	// 不能整除小时的班次保留两位小数
	assert.Equal(t, 3.25, WorkHours("09:00", "12:15", 0))
	assert.Equal(t, 0.25, WorkHours("10:00", "10:30", 15))
}

func TestDailyHours(t *testing.T) {
	schedules := []*domain.Schedule{
		hoursSchedule(1, "2025-03-10", "09:00", "13:00", 0),
		hoursSchedule(1, "2025-03-10", "14:00", "18:30", 30),
		hoursSchedule(1, "2025-03-11", "09:00", "17:00", 60), // 别的日期
		hoursSchedule(2, "2025-03-10", "09:00", "17:00", 0),  // 别的员工
	}

	assert.Equal(t, 8.0, DailyHours(1, "2025-03-10", schedules))
	assert.Equal(t, 7.0, DailyHours(1, "2025-03-11", schedules))
	assert.Equal(t, 0.0, DailyHours(1, "2025-03-12", schedules))
}

func TestDailyTotals(t *testing.T) {
	schedules := []*domain.Schedule{
		hoursSchedule(1, "2025-03-10", "09:00", "17:00", 30),
		hoursSchedule(1, "2025-03-11", "09:00", "12:15", 0),
		hoursSchedule(1, "2025-03-20", "09:00", "17:00", 0), // 区间外
	}

	totals := DailyTotals(1, "2025-03-10", "2025-03-16", schedules)
	assert.Equal(t, map[string]float64{
		"2025-03-10": 7.5,
		"2025-03-11": 3.25,
	}, totals)
}

func TestRangeHoursSumsRoundedDailies(t *testing.T) {
	// 每天一段 20 分钟的班次小计为 0.33 小时，
	// 周总计是 7 天小计的和 2.31，而不是先累加分钟再取整的 2.33
	schedules := make([]*domain.Schedule, 0, 7)
	dates := []string{
		"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13",
		"2025-03-14", "2025-03-15", "2025-03-16",
	}
	for _, d := range dates {
		schedules = append(schedules, hoursSchedule(1, d, "09:00", "09:20", 0))
	}

	totals := DailyTotals(1, "2025-03-10", "2025-03-16", schedules)
	for _, d := range dates {
		assert.Equal(t, 0.33, totals[d], d)
	}

	assert.Equal(t, 2.31, RangeHours(1, "2025-03-10", "2025-03-16", schedules))
}

func TestRangeHoursEmpty(t *testing.T) {
	assert.Equal(t, 0.0, RangeHours(1, "2025-03-10", "2025-03-16", nil))
}
