package schedule

import (
	"fmt"
	"time"
)

// EndOfDayMinutes 是一天中最后一个合法的时刻（23:59），排班不允许跨天
const EndOfDayMinutes int32 = 1439

// ParseClock 将 HH:MM 格式的时间字符串解析为当天的分钟数。
// time.Parse 的 "15" 不要求小时补零（"9:00" 也能通过），因此先校验长度
func ParseClock(s string) (int32, error) {
	if len(s) != 5 {
		return 0, fmt.Errorf("时间格式错误: %s", s)
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("时间格式错误: %s", s)
	}

	return int32(t.Hour()*60 + t.Minute()), nil
}

// FormatClock 将当天的分钟数格式化为 HH:MM
func FormatClock(minutes int32) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// QuantizeQuarterHour 将拖放位置对齐到所在的 15 分钟刻度（向下取整到 :00/:15/:30/:45）
func QuantizeQuarterHour(minutes int32) int32 {
	return minutes - minutes%15
}
