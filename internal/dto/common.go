package dto

// PageParams are the shared limit/offset query parameters.
type PageParams struct {
	Limit  int `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
