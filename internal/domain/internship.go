package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxCompanyNameLen = 255
	maxURLLen         = 500
)

// Internship is a posted opportunity. Despite the name it also covers
// entry-level jobs; the intake classifier decides which label applies.
type Internship struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	JobDescription string    `json:"job_description"`
	URL            string    `json:"url"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewInternship(companyName, jobDescription, rawURL string, now time.Time) (*Internship, error) {
	companyName, jobDescription, rawURL, err := cleanInternshipFields(companyName, jobDescription, rawURL)
	if err != nil {
		return nil, err
	}
	return &Internship{
		ID:             uuid.NewString(),
		CompanyName:    companyName,
		JobDescription: jobDescription,
		URL:            rawURL,
		CreatedAt:      now.UTC(),
	}, nil
}

func (i *Internship) ApplyUpdate(companyName, jobDescription, rawURL string) error {
	companyName, jobDescription, rawURL, err := cleanInternshipFields(companyName, jobDescription, rawURL)
	if err != nil {
		return err
	}
	i.CompanyName = companyName
	i.JobDescription = jobDescription
	i.URL = rawURL
	return nil
}

func cleanInternshipFields(companyName, jobDescription, rawURL string) (string, string, string, error) {
	companyName = strings.TrimSpace(companyName)
	jobDescription = strings.TrimSpace(jobDescription)
	rawURL = strings.TrimSpace(rawURL)

	if companyName == "" || jobDescription == "" || rawURL == "" {
		return "", "", "", ErrValidation("Missing required fields")
	}
	if len(companyName) > maxCompanyNameLen {
		return "", "", "", ErrValidation("company_name must be 255 characters or fewer")
	}
	if len(rawURL) > maxURLLen {
		return "", "", "", ErrValidation("url must be 500 characters or fewer")
	}
	if !IsHTTPURL(rawURL) {
		return "", "", "", ErrValidation("url must start with http:// or https://")
	}
	return companyName, jobDescription, rawURL, nil
}

// IsHTTPURL reports whether s parses as an absolute http or https URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
