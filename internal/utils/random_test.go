package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiban-dev/store-scheduler/backend/internal/schedule"
)

func TestGenerateRandomShiftTemplate(t *testing.T) {
	for i := 0; i < 50; i++ {
		tpl := GenerateRandomShiftTemplate(1, 2)

		assert.NotEmpty(t, tpl.Name)
		require.NoError(t, ValidateShiftTemplateTimes(tpl.StartTime, tpl.EndTime, tpl.LunchMinutes))

		// 模板时间总是落在 15 分钟刻度上
		start, err := schedule.ParseClock(tpl.StartTime)
		require.NoError(t, err)
		end, err := schedule.ParseClock(tpl.EndTime)
		require.NoError(t, err)
		assert.Zero(t, start%15)
		assert.Zero(t, end%15)

		assert.Equal(t, schedule.WorkHours(tpl.StartTime, tpl.EndTime, tpl.LunchMinutes), tpl.TotalHours)
	}
}

func TestGenerateRandomEmployee(t *testing.T) {
	user, err := GenerateRandomEmployee("password", "example.com", 7)
	require.NoError(t, err)

	assert.NotEmpty(t, user.Username)
	assert.NotEmpty(t, user.FullName)
	assert.Equal(t, user.Username+"@example.com", user.Email)
	require.NotNil(t, user.StoreID)
	assert.Equal(t, int64(7), *user.StoreID)
}
