package auth

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address1   string `json:"address1" binding:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zip_code" binding:"required"`
	StudioName string `json:"studio_name" binding:"required"`
	Website    string `json:"website"`
	Facebook   string `json:"facebook"`
	Instagram  string `json:"instagram"`
	TikTok     string `json:"tiktok"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UserPublic struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	StudioName string `json:"studio_name,omitempty"`
}
