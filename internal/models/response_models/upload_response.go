package response_models

// UploadResult is the acknowledgment returned for a stored image.
type UploadResult struct {
	Success    bool   `json:"success"`
	ImageURL   string `json:"imageUrl"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

type PingResponse struct {
	Message string `json:"message"`
}
