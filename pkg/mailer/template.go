package mailer

import "strings"

// Fields carries the submission values available to template placeholders.
type Fields struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	ProjectType string
	Message     string
}

// defaultProjectType substitutes for {project_type} when the submission left
// the field empty, so template sentences still read naturally.
const defaultProjectType = "your project"

// Substitute resolves {name}, {email}, {phone}, {address}, {project_type}
// and {message} placeholders in body against the given fields. Missing
// optional fields substitute as empty strings, except project type which
// falls back to a fixed default.
func Substitute(body string, fields Fields) string {
	projectType := fields.ProjectType
	if projectType == "" {
		projectType = defaultProjectType
	}
	return strings.NewReplacer(
		"{name}", fields.Name,
		"{email}", fields.Email,
		"{phone}", fields.Phone,
		"{address}", fields.Address,
		"{project_type}", projectType,
		"{message}", fields.Message,
	).Replace(body)
}

// SubjectFromBody derives an email subject from the first line of body.
func SubjectFromBody(body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "Message from Dr. Foscah Faith"
	}
	line, _, _ := strings.Cut(trimmed, "\n")
	return strings.TrimSpace(line)
}
