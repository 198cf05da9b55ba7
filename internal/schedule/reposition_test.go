package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func referenceID(id int64) *int64 {
	return &id
}

func TestRepositionPreservesDuration(t *testing.T) {
	item := RepositionItem{
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "17:00",
		LunchMinutes:        60,
		ReferenceScheduleID: referenceID(42),
	}

	// 8 小时的班次被拖到 10:15，结束时间跟着平移到 18:15
	result := Reposition(item, 1, "2025-03-10", 615)
	require.Equal(t, OutcomeMoved, result.Outcome)
	require.NotNil(t, result.Draft)
	assert.Equal(t, "10:15", result.Draft.StartTime)
	assert.Equal(t, "18:15", result.Draft.EndTime)
	assert.Equal(t, int32(60), result.Draft.LunchMinutes)
	assert.Equal(t, domain.DraftActionUpdate, result.Draft.Action)
	require.NotNil(t, result.Draft.ReferenceScheduleID)
	assert.Equal(t, int64(42), *result.Draft.ReferenceScheduleID)
}

func TestRepositionQuantizesDropPosition(t *testing.T) {
	item := RepositionItem{
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "12:00",
		ReferenceScheduleID: referenceID(1),
	}

	// 10:07 向下对齐到 10:00
	result := Reposition(item, 2, "2025-03-10", 607)
	require.Equal(t, OutcomeMoved, result.Outcome)
	assert.Equal(t, "10:00", result.Draft.StartTime)
	assert.Equal(t, "13:00", result.Draft.EndTime)
	assert.Equal(t, int64(2), result.Draft.EmployeeID)
}

func TestRepositionNoOp(t *testing.T) {
	item := RepositionItem{
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "17:00",
		ReferenceScheduleID: referenceID(1),
	}

	// 对齐后的落点与原位置相同，不应该产生任何提案
	result := Reposition(item, 1, "2025-03-10", 540)
	assert.Equal(t, OutcomeNoOp, result.Outcome)
	assert.Nil(t, result.Draft)

	// 540 和 547 对齐后都是 09:00，微小抖动同样短路
	result = Reposition(item, 1, "2025-03-10", 547)
	assert.Equal(t, OutcomeNoOp, result.Outcome)
}

func TestRepositionNotNoOpAcrossEmployeeOrDate(t *testing.T) {
	item := RepositionItem{
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "17:00",
		ReferenceScheduleID: referenceID(1),
	}

	// 时间不变但换了员工
	result := Reposition(item, 2, "2025-03-10", 540)
	assert.Equal(t, OutcomeMoved, result.Outcome)

	// 时间不变但换了日期
	result = Reposition(item, 1, "2025-03-11", 540)
	assert.Equal(t, OutcomeMoved, result.Outcome)
	assert.Equal(t, "2025-03-11", result.Draft.Date)
}

func TestRepositionRejectsPastEndOfDay(t *testing.T) {
	item := RepositionItem{
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "17:00",
		ReferenceScheduleID: referenceID(1),
	}

	// 8 小时的班次拖到 22:15 会跨天，必须拒绝
	result := Reposition(item, 1, "2025-03-10", 1335)
	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.NotEmpty(t, result.Reason)
	assert.Nil(t, result.Draft)
}

func TestRepositionAllowsEndExactlyAtEndOfDay(t *testing.T) {
	item := RepositionItem{
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "09:59",
		ReferenceScheduleID: referenceID(1),
	}

	// 刚好在 23:59 结束仍然合法
	result := Reposition(item, 1, "2025-03-10", 1380)
	require.Equal(t, OutcomeMoved, result.Outcome)
	assert.Equal(t, "23:00", result.Draft.StartTime)
	assert.Equal(t, "23:59", result.Draft.EndTime)
}

func TestRepositionableDraft(t *testing.T) {
	assert.True(t, RepositionableDraft(domain.DraftActionCreate))
	assert.True(t, RepositionableDraft(domain.DraftActionUpdate))
	// 撤班草稿的时间字段是被撤班次的快照，不允许拖动
	assert.False(t, RepositionableDraft(domain.DraftActionDelete))
}

func TestRepositionCreateDraftStaysCreate(t *testing.T) {
	item := RepositionItem{
		EmployeeID:   1,
		Date:         "2025-03-10",
		StartTime:    "09:00",
		EndTime:      "12:00",
		LunchMinutes: 15,
	}

	// 被拖动的是尚未发布的新增草稿，提案依然是新增
	result := Reposition(item, 3, "2025-03-12", 780)
	require.Equal(t, OutcomeMoved, result.Outcome)
	assert.Equal(t, domain.DraftActionCreate, result.Draft.Action)
	assert.Nil(t, result.Draft.ReferenceScheduleID)
	assert.Equal(t, int32(15), result.Draft.LunchMinutes)
}
