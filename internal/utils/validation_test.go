package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paiban-dev/store-scheduler/backend/internal/domain"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-03-10"))
	assert.Error(t, ValidateDate("2025-3-10"))
	assert.Error(t, ValidateDate("2025-02-30"))
	assert.Error(t, ValidateDate("10/03/2025"))
	assert.Error(t, ValidateDate(""))
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("2025-03-10", "2025-03-16"))
	assert.NoError(t, ValidateDateRange("2025-03-10", "2025-03-10"))
	assert.Error(t, ValidateDateRange("2025-03-16", "2025-03-10"))
	assert.Error(t, ValidateDateRange("bad", "2025-03-10"))
	assert.Error(t, ValidateDateRange("2025-03-10", "bad"))
}

func TestValidateScheduleTimes(t *testing.T) {
	assert.NoError(t, ValidateScheduleTimes("2025-03-10", "09:00", "17:00", 60))
	assert.NoError(t, ValidateScheduleTimes("2025-03-10", "00:00", "23:59", 0))

	// 结束时间必须晚于开始时间，不允许跨天
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "17:00", "09:00", 0))
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "09:00", "09:00", 0))

	// 午休时长不能为负且不能超过班次总时长
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "09:00", "10:00", -1))
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "09:00", "10:00", 61))
	assert.NoError(t, ValidateScheduleTimes("2025-03-10", "09:00", "10:00", 60))

	assert.Error(t, ValidateScheduleTimes("bad", "09:00", "17:00", 0))
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "0900", "17:00", 0))
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "9:00", "17:00", 0))
	assert.Error(t, ValidateScheduleTimes("2025-03-10", "09:00", "25:00", 0))
}

func TestValidateShiftTemplateTimes(t *testing.T) {
	assert.NoError(t, ValidateShiftTemplateTimes("09:00", "17:00", 30))
	assert.Error(t, ValidateShiftTemplateTimes("17:00", "09:00", 0))
}

func TestValidateDraftActionReferencePairing(t *testing.T) {
	ref := int64(1)
	base := domain.ScheduleDraft{
		StoreID:      1,
		EmployeeID:   1,
		Date:         "2025-03-10",
		StartTime:    "09:00",
		EndTime:      "17:00",
		LunchMinutes: 60,
	}

	// create 草稿不能携带引用
	d := base
	d.Action = domain.DraftActionCreate
	assert.NoError(t, ValidateDraft(&d))
	d.ReferenceScheduleID = &ref
	assert.Error(t, ValidateDraft(&d))

	// update/delete 草稿必须携带引用
	for _, action := range []domain.DraftAction{domain.DraftActionUpdate, domain.DraftActionDelete} {
		d := base
		d.Action = action
		assert.Error(t, ValidateDraft(&d), string(action))
		d.ReferenceScheduleID = &ref
		assert.NoError(t, ValidateDraft(&d), string(action))
	}

	// 非法的操作类型
	d = base
	d.Action = domain.DraftAction("archive")
	assert.Error(t, ValidateDraft(&d))
}

func TestValidateDraftTimeConstraints(t *testing.T) {
	d := &domain.ScheduleDraft{
		StoreID:      1,
		EmployeeID:   1,
		Date:         "2025-03-10",
		StartTime:    "17:00",
		EndTime:      "09:00",
		LunchMinutes: 0,
		Action:       domain.DraftActionCreate,
	}

	assert.Error(t, ValidateDraft(d))
}
