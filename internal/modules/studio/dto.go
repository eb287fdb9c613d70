package studio

// UpdateProfileRequest is the whole editable profile document; a PUT
// replaces every field, last write wins.
type UpdateProfileRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address1   string `json:"address1" binding:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zip_code" binding:"required"`
	StudioName string `json:"studio_name" binding:"required"`
	Website    string `json:"website" validate:"omitempty,url"`
	Facebook   string `json:"facebook" validate:"omitempty,url"`
	Instagram  string `json:"instagram"`
	TikTok     string `json:"tiktok"`
}
