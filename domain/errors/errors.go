package errors

import "errors"

// ================= 业务领域错误定义 =================
// 所有业务逻辑相关的错误统一在此定义，避免跨包重复定义

// ErrUserAlreadyExists 用户已存在错误
// 插入时触发唯一约束（clerk_id 或 email）时返回此错误，调用方应视为可恢复
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrInvalidUser 用户数据不完整
// Clerk 事件缺少必填字段（例如没有任何邮箱）时返回此错误
var ErrInvalidUser = errors.New("invalid user data")
