package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func newSchedule(id int64, start, end string) *domain.Schedule {
	return &domain.Schedule{
		ID:         id,
		StoreID:    1,
		EmployeeID: 1,
		Date:       "2025-03-10",
		StartTime:  start,
		EndTime:    end,
	}
}

func newDraft(id int64, start, end string, action domain.DraftAction, ref *int64) *domain.ScheduleDraft {
	return &domain.ScheduleDraft{
		ID:                  id,
		StoreID:             1,
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           start,
		EndTime:             end,
		Action:              action,
		ReferenceScheduleID: ref,
	}
}

func slotIDs(items []SlotItem) (scheduleIDs, draftIDs []int64) {
	for _, it := range items {
		switch it.Kind {
		case KindSchedule:
			scheduleIDs = append(scheduleIDs, it.Schedule.ID)
		case KindDraft:
			draftIDs = append(draftIDs, it.Draft.ID)
		}
	}
	return
}

func TestOverlappingHalfOpenBoundaries(t *testing.T) {
	schedules := []*domain.Schedule{
		newSchedule(1, "08:00", "12:00"), // 在窗口开始时刻恰好结束，不算相交
		newSchedule(2, "12:00", "16:00"), // 在窗口开始时刻恰好开始，算相交
		newSchedule(3, "11:00", "12:30"), // 跨过窗口开始时刻
		newSchedule(4, "13:00", "13:30"), // 在窗口结束时刻恰好开始，不算相交
	}

	items := Overlapping(720, 780, schedules, nil) // 12:00 - 13:00
	scheduleIDs, _ := slotIDs(items)
	assert.Equal(t, []int64{2, 3}, scheduleIDs)
}

func TestOverlappingIncludesAllDraftActions(t *testing.T) {
	ref := int64(7)
	drafts := []*domain.ScheduleDraft{
		newDraft(10, "09:00", "12:00", domain.DraftActionCreate, nil),
		newDraft(11, "10:00", "14:00", domain.DraftActionUpdate, &ref),
		// delete 草稿在发布前仍然占用原时段
		newDraft(12, "11:00", "15:00", domain.DraftActionDelete, &ref),
	}

	items := Overlapping(660, 720, nil, drafts) // 11:00 - 12:00
	_, draftIDs := slotIDs(items)
	assert.Equal(t, []int64{10, 11, 12}, draftIDs)
}

func TestOverlappingKindTagging(t *testing.T) {
	schedules := []*domain.Schedule{newSchedule(1, "09:00", "17:00")}
	drafts := []*domain.ScheduleDraft{newDraft(2, "09:00", "17:00", domain.DraftActionCreate, nil)}

	items := Overlapping(540, 1020, schedules, drafts)
	require.Len(t, items, 2)

	assert.Equal(t, KindSchedule, items[0].Kind)
	assert.NotNil(t, items[0].Schedule)
	assert.Nil(t, items[0].Draft)

	assert.Equal(t, KindDraft, items[1].Kind)
	assert.NotNil(t, items[1].Draft)
	assert.Nil(t, items[1].Schedule)
}

func TestOverlappingEmptyWindow(t *testing.T) {
	schedules := []*domain.Schedule{newSchedule(1, "09:00", "17:00")}

	// 空窗口不与任何班次相交
	items := Overlapping(600, 600, schedules, nil)
	assert.Empty(t, items)
}
