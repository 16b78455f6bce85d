package upload

type DeleteFilesRequest struct {
	Paths []string `json:"paths" binding:"required,min=1,max=100,dive,required,max=500"`
}

type DeleteFilesResponse struct {
	Deleted int      `json:"deleted"`
	Failed  []string `json:"failed"`
}
