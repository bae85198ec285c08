package domain

// Option pairs a wire code with its display text.
type Option struct {
	Code    string
	Display string
}

// AnyOption is the "no filter" choice in list filters.
const AnyOption = "---"

var Departments = []Option{
	{Code: "IT", Display: "Information Technology"},
	{Code: "CS", Display: "Computer Science"},
	{Code: "ECE", Display: "Electronics and Communication Engineering"},
	{Code: "EEE", Display: "Electrical and Electronics Engineering"},
	{Code: "CIVIL", Display: "Civil Engineering"},
	{Code: "MECH", Display: "Mechanical Engineering"},
}

var Years = []Option{
	{Code: "FE", Display: "First Year"},
	{Code: "SE", Display: "Second Year"},
	{Code: "TE", Display: "Third Year"},
	{Code: "BE", Display: "Final Year"},
	{Code: "PG", Display: "Postgraduate"},
}

var Subjects = []Option{
	{Code: "Physics", Display: "Physics"},
	{Code: "Chemistry", Display: "Chemistry"},
	{Code: "Math", Display: "Math"},
	{Code: "Biology", Display: "Biology"},
	{Code: "Computer Science", Display: "Computer Science"},
	{Code: "Other", Display: "Other"},
}

// DefaultSubject is preselected on the resources page.
const DefaultSubject = "Physics"

// DisplayName looks up code in options and falls back to the code itself.
func DisplayName(options []Option, code string) string {
	for _, opt := range options {
		if opt.Code == code {
			return opt.Display
		}
	}
	return code
}

// HasCode reports whether code is one of options.
func HasCode(options []Option, code string) bool {
	for _, opt := range options {
		if opt.Code == code {
			return true
		}
	}
	return false
}
