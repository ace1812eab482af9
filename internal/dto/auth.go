package dto

// 註冊
type SignupDto struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// 登入
type LoginDto struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// 登入成功回傳的 token
type TokenResponseDto struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // 秒
}
