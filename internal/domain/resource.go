package domain

// Resource is a study material link grouped by subject.
type Resource struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	FileURL    string `json:"fileUrl"`
	Subject    string `json:"subject"`
	UploadedBy string `json:"uploadedBy,omitempty"`
}
