package request

type CreateAlbumRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateAlbumRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// ShareAlbumRequest uses a pointer so a missing is_public is told apart from false.
type ShareAlbumRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

type SharedAlbumURI struct {
	Token string `uri:"token" binding:"required,sharetoken"`
}

// ResourceURI binds the :id path segment shared by album and photo routes.
type ResourceURI struct {
	ID string `uri:"id" binding:"required,uuidstrict"`
}
