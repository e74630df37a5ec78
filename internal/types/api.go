package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxTextLength bounds every free-text field accepted over the API (bytes)
const maxTextLength = 200000

// validate reports failing fields by their JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseResumeRequest represents the request to parse raw resume text.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required,max=200000"`
}

// MatchRequest represents the request to score a structured resume against a job description.
// An empty job description is valid and yields a zero score.
type MatchRequest struct {
	Resume         *StructuredResume `json:"resume" validate:"required"`
	JobDescription string            `json:"job_description" validate:"max=200000"`
}

// MatchTextRequest represents the request to score raw resume text against a job description.
type MatchTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,max=200000"`
	JobDescription string `json:"job_description" validate:"max=200000"`
}

// BatchMatchRequest scores one resume text against several job descriptions.
type BatchMatchRequest struct {
	ResumeText      string   `json:"resume_text" validate:"required,max=200000"`
	JobDescriptions []string `json:"job_descriptions" validate:"required,min=1,max=20,dive,max=200000"`
}

// BatchMatchResponse holds one report per job description, in request order.
type BatchMatchResponse struct {
	Reports []MatchReport `json:"reports"`
}

// MatchURLRequest scores raw resume text against a job posting fetched from a URL.
type MatchURLRequest struct {
	ResumeText string `json:"resume_text" validate:"required,max=200000"`
	JobURL     string `json:"job_url" validate:"required,url"`
}

// JobSource describes where a fetched job description came from.
type JobSource struct {
	URL       string `json:"url"`
	Platform  string `json:"platform"`
	Title     string `json:"title,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

// MatchURLResponse pairs the report with the posting it was computed against.
type MatchURLResponse struct {
	Report MatchReport `json:"report"`
	Job    JobSource   `json:"job"`
}

// ScoreLabelResponse describes the band a score falls into.
type ScoreLabelResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchTextRequest using the validator.
func (r *MatchTextRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchURLRequest using the validator.
func (r *MatchURLRequest) Validate() error {
	return validate.Struct(r)
}

// MaxTextLength returns the maximum accepted length of a free-text field.
func MaxTextLength() int {
	return maxTextLength
}
