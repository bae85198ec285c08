package dto

// LoginForm is posted by the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is posted by the registration page.
type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Role     string `form:"role" validate:"required,role"`
}

// EventForm creates an event. Date uses the YYYY-MM-DD layout the events service expects.
type EventForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
}

// NoticeForm posts a notice.
type NoticeForm struct {
	Title      string `form:"title" validate:"required"`
	Content    string `form:"content" validate:"required"`
	Department string `form:"department" validate:"required,department"`
	Year       string `form:"year" validate:"required,year"`
}

// NoticeFilterForm is the query string of the notices list.
type NoticeFilterForm struct {
	Department string `query:"department"`
	Year       string `query:"year"`
}

// ResourceForm uploads a resource link.
type ResourceForm struct {
	Title   string `form:"title" validate:"required"`
	FileURL string `form:"fileUrl" validate:"required,url"`
	Subject string `form:"subject" validate:"required,subject"`
}

// RoleForm changes a user's role from the admin panel.
type RoleForm struct {
	Role string `form:"role" validate:"required,role"`
}
