package core

type Role string

const (
	RoleAdmin Role = "admin" // 管理員：可讀取完整帳本
	RoleUser  Role = "user"  // 一般使用者
)

type Status string

const (
	StatusActive  Status = "active"  // 正常可用
	StatusBlocked Status = "blocked" // 被封鎖（例如濫用）
	StatusDeleted Status = "deleted" // 已刪除（軟刪除）
)
