package domain

// Notice targets a department and study year.
type Notice struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Department string `json:"department"`
	Year       string `json:"year"`
	PostedBy   string `json:"postedBy,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// NoticeFilter narrows a notice listing; empty fields are not sent.
type NoticeFilter struct {
	Department string
	Year       string
}
