package dto

type UploadResponse struct {
	Message string `json:"message"`
	Image   string `json:"image"`
}
