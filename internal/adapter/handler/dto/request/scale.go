package request

type ScaleRequest struct {
	Bucket string `json:"bucket" binding:"required"`
	Key    string `json:"key" binding:"required"`
}

type ListVariantsRequest struct {
	Bucket    string `form:"bucket" binding:"required"`
	SourceKey string `form:"source_key"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1"`
}
