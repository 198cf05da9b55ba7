package domain

import (
	"time"
)

type Role string

const (
	RoleStaff        Role = "店员"
	RoleStoreManager Role = "店长"
	RoleSystemAdmin  Role = "系统管理员"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	StoreID      *int64    `json:"storeID"` // 系统管理员不隶属于任何门店，此时为 nil
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
