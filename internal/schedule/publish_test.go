package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func planDraft(id int64, action domain.DraftAction, ref *int64) *domain.ScheduleDraft {
	return &domain.ScheduleDraft{
		ID:                  id,
		StoreID:             1,
		EmployeeID:          1,
		Date:                "2025-03-10",
		StartTime:           "09:00",
		EndTime:             "17:00",
		Action:              action,
		ReferenceScheduleID: ref,
	}
}

func allExist(int64) bool  { return true }
func noneExist(int64) bool { return false }

func TestPlanPublishEmpty(t *testing.T) {
	// 没有草稿时发布是一次成功的空操作
	plan, err := PlanPublish(nil, allExist)
	require.NoError(t, err)
	assert.Empty(t, plan.Inserts)
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Deletes)
}

func TestPlanPublishMixedDrafts(t *testing.T) {
	ref1, ref2, ref3 := int64(101), int64(102), int64(103)
	drafts := []*domain.ScheduleDraft{
		planDraft(1, domain.DraftActionCreate, nil),
		planDraft(2, domain.DraftActionCreate, nil),
		planDraft(3, domain.DraftActionUpdate, &ref1),
		planDraft(4, domain.DraftActionUpdate, &ref2),
		planDraft(5, domain.DraftActionDelete, &ref3),
	}

	plan, err := PlanPublish(drafts, allExist)
	require.NoError(t, err)

	// 每条草稿恰好产生一次修改
	assert.Len(t, plan.Inserts, 2)
	assert.Len(t, plan.Updates, 2)
	assert.Equal(t, []int64{ref3}, plan.Deletes)
	assert.Equal(t, len(drafts), len(plan.Inserts)+len(plan.Updates)+len(plan.Deletes))
}

func TestPlanPublishStaleUpdateReference(t *testing.T) {
	ref := int64(101)
	drafts := []*domain.ScheduleDraft{
		planDraft(1, domain.DraftActionCreate, nil),
		planDraft(2, domain.DraftActionUpdate, &ref),
	}

	// update 草稿引用的排班已被删除时整批失败，不返回部分计划
	plan, err := PlanPublish(drafts, noneExist)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
	assert.Nil(t, plan)
}

func TestPlanPublishStaleDeleteIsIdempotent(t *testing.T) {
	ref := int64(101)
	drafts := []*domain.ScheduleDraft{
		planDraft(1, domain.DraftActionDelete, &ref),
	}

	// delete 草稿引用的排班已经不存在时视为已完成，不计入删除也不报错
	plan, err := PlanPublish(drafts, noneExist)
	require.NoError(t, err)
	assert.Empty(t, plan.Deletes)
}

func TestPlanPublishMissingReference(t *testing.T) {
	for _, action := range []domain.DraftAction{domain.DraftActionUpdate, domain.DraftActionDelete} {
		plan, err := PlanPublish([]*domain.ScheduleDraft{planDraft(1, action, nil)}, allExist)
		assert.Error(t, err, string(action))
		assert.Nil(t, plan, string(action))
	}
}

func TestPlanPublishInvalidAction(t *testing.T) {
	plan, err := PlanPublish([]*domain.ScheduleDraft{planDraft(1, domain.DraftAction("archive"), nil)}, allExist)
	assert.Error(t, err)
	assert.Nil(t, plan)
}
