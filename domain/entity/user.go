package entity

import "time"

// User Clerk 用户同步表
// 认证完全交给 Clerk，Password 始终为空字符串
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClerkID   string    `gorm:"uniqueIndex;size:64;not null" json:"clerkId" validate:"required"` // Clerk user_id
	Name      string    `gorm:"size:255;not null" json:"name" validate:"required"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Password  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName 固定表名，cleardb 等工具依赖它
func (User) TableName() string {
	return "users"
}
