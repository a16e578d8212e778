package dto

import (
	"time"

	"github.com/internsnow/campus-match/internal/domain"
)

type InternshipReq struct {
	CompanyName    string `json:"company_name"`
	JobDescription string `json:"job_description" validate:"max=10000"`
	URL            string `json:"url"`
}

type InternshipResp struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	JobDescription string    `json:"job_description"`
	URL            string    `json:"url"`
	DetailsHref    string    `json:"details_href"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToInternshipResp(in *domain.Internship, detailsHref string) InternshipResp {
	return InternshipResp{
		ID:             in.ID,
		CompanyName:    in.CompanyName,
		JobDescription: in.JobDescription,
		URL:            in.URL,
		DetailsHref:    detailsHref,
		CreatedAt:      in.CreatedAt,
	}
}
