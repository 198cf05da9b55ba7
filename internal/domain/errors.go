package domain

import "errors"

var (
	// ErrScheduleNotFound 表示草稿引用的已发布排班已经不存在（被其他流程删掉了）
	ErrScheduleNotFound = errors.New("引用的排班不存在")
	// ErrPublishAborted 表示发布事务没有提交，数据库中不会残留任何部分修改
	ErrPublishAborted = errors.New("发布未完成，所有修改已回滚")
)
