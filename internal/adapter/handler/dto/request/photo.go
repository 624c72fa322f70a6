package request

type UpdatePhotoRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type DeletePhotosRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=100"`
}

type SearchPhotosRequest struct {
	Query string `form:"q"`
	Page  string `form:"page"`
	Limit string `form:"limit"`
	Order string `form:"order"`
}

type ListPhotosRequest struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
	Order string `form:"order"`
}
