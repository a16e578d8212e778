package postgres

import (
	"context"
	"database/sql"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/domain"
)

type sampleInternship struct {
	company, description, url string
}

var sampleInternships = []sampleInternship{
	{"Acme Corp", "We are seeking a motivated intern to assist with front-end development, working with React and TypeScript on real product features.", "https://acme.example.com/careers"},
	{"BrightStart Labs", "Join our team to work on data engineering tasks, ETL pipelines, and learn best practices for production data systems.", "https://brightstart.example.com/internships"},
	{"GreenField Marketing", "Marketing intern wanted to support campaign analytics, social media, and content creation. Great for students studying communications.", "https://greenfield.example.com/apply"},
	{"BlueWave Technologies", "Software engineering intern to assist with front-end React development and API integration. Ideal for CS or IT majors.", "https://bluewave.example.com/internship"},
	{"Summit Financial Group", "Finance intern needed to support data analysis, budgeting reports, and client presentations. Excel experience preferred.", "https://summitfg.example.com/careers"},
	{"EcoUrban Design", "Architecture and sustainability intern to aid in drafting eco-friendly building plans using AutoCAD and Revit.", "https://ecourban.example.com/jobs"},
	{"Nova Health Analytics", "Data science intern to analyze healthcare datasets and develop visual dashboards using Python and Tableau.", "https://novahealth.example.com/apply"},
	{"Lumen Media", "Video production intern to assist with editing, motion graphics, and lighting setup for digital campaigns.", "https://lumenmedia.example.com/intern"},
	{"IronClad Security", "Cybersecurity intern to monitor network vulnerabilities and assist with penetration testing exercises.", "https://ironcladsec.example.com/internship"},
	{"Horizon Robotics", "AI research intern to support model training, dataset curation, and testing autonomous navigation algorithms.", "https://horizonrobotics.example.com/apply"},
	{"SilverLine Logistics", "Operations intern responsible for optimizing supply chain data, shipment tracking, and inventory reports.", "https://silverline.example.com/intern"},
	{"Aurora Publishing", "Editorial intern to proofread manuscripts, draft promotional copy, and support author correspondence.", "https://aurorapub.example.com/apply"},
	{"NextGen Energy", "Engineering intern to assist in renewable energy feasibility studies and solar system design analysis.", "https://nextgenenergy.example.com/careers"},
	{"BrightPath Education", "Education intern to develop tutoring materials, coordinate online workshops, and support curriculum innovation.", "https://brightpath.example.com/internship"},
}

var sampleEvents = []domain.Event{
	{
		ID:               "evt-001",
		Title:            "Grow Your Circle: Tech Mixer",
		Date:             "Thu, Feb 20",
		Time:             "6:00 PM - 8:00 PM",
		Location:         "Downtown Innovation Hub",
		Description:      "Meet local founders, engineers, and product teams. Short talks at 6:30 PM.",
		Details:          "Arrive by 6:00 PM for open networking. Lightning talks start at 6:30 PM. Bring a resume or portfolio link to share.",
		Host:             "City Tech Alliance",
		Price:            "Free",
		RegistrationLink: "https://example.com/tech-mixer",
		Tags:             []string{"Tech", "Networking", "Startups"},
	},
	{
		ID:               "evt-002",
		Title:            "AI & Data Networking Night",
		Date:             "Tue, Feb 25",
		Time:             "5:30 PM - 7:30 PM",
		Location:         "City Library Auditorium",
		Description:      "Connect with data professionals, explore career paths, and get resume feedback.",
		Details:          "Panel discussion at 5:45 PM, followed by curated breakout circles for analytics, ML, and data engineering.",
		Host:             "Data Society",
		Price:            "$5 student ticket",
		RegistrationLink: "https://example.com/ai-data-night",
		Tags:             []string{"AI", "Data", "Careers"},
	},
	{
		ID:               "evt-003",
		Title:            "Design + Product Community Meetup",
		Date:             "Sat, Mar 1",
		Time:             "10:00 AM - 12:00 PM",
		Location:         "Riverside Co-Working",
		Description:      "Lightning talks from PMs and designers, followed by roundtable networking.",
		Details:          "Bring a case study or product teardown to discuss. Coffee and snacks provided.",
		Host:             "Product Guild",
		Price:            "Free",
		RegistrationLink: "https://example.com/design-product",
		Tags:             []string{"Design", "Product", "Community"},
	},
	{
		ID:               "evt-004",
		Title:            "Finance & Consulting Career Social",
		Date:             "Wed, Mar 5",
		Time:             "6:00 PM - 8:30 PM",
		Location:         "Union Hall",
		Description:      "Chat with analysts and consultants, learn about summer internship timelines.",
		Details:          "Fireside chat at 6:15 PM. Resume review tables open from 7:00 PM to 8:00 PM.",
		Host:             "Future Finance Network",
		Price:            "Free with RSVP",
		RegistrationLink: "https://example.com/finance-consulting",
		Tags:             []string{"Finance", "Consulting", "Careers"},
	},
	{
		ID:               "evt-005",
		Title:            "Startup Pitch + Student Networking",
		Date:             "Fri, Mar 7",
		Time:             "4:00 PM - 6:00 PM",
		Location:         "Campus Center Room 204",
		Description:      "Local startups pitch for interns. Great place to get introduced and follow up.",
		Details:          "Pitch session from 4:10 PM to 5:00 PM, then direct networking with founders.",
		Host:             "Campus Venture Lab",
		Price:            "Free",
		RegistrationLink: "https://example.com/startup-pitch",
		Tags:             []string{"Startups", "Internships", "Networking"},
	},
}

type SeedResult struct {
	Internships      int
	Events           int
	FluencyQuestions int
}

// Seed fills empty tables with the sample listings. Tables that already hold
// rows are left alone, so running it twice is harmless.
func Seed(ctx context.Context, db *sql.DB, now time.Time) (SeedResult, error) {
	var res SeedResult
	internships := NewInternshipRepo(db)
	events := NewEventRepo(db)

	n, err := internships.Count(ctx)
	if err != nil {
		return res, err
	}
	if n == 0 {
		for i, s := range sampleInternships {
			// Stagger timestamps so the listing order matches the sample order.
			in, err := domain.NewInternship(s.company, s.description, s.url, now.Add(-time.Duration(i)*time.Minute))
			if err != nil {
				return res, err
			}
			if _, err := internships.Create(ctx, in); err != nil {
				zlog.Error().Err(err).Str("company", s.company).Msg("seed internship failed")
				continue
			}
			res.Internships++
		}
	}

	n, err = events.Count(ctx)
	if err != nil {
		return res, err
	}
	if n == 0 {
		for i := range sampleEvents {
			e := sampleEvents[i]
			e.Tags = domain.NormalizeTags(e.Tags)
			e.CreatedAt = now.Add(-time.Duration(i) * time.Minute).UTC()
			e.UpdatedAt = e.CreatedAt
			if err := events.Create(ctx, &e); err != nil {
				zlog.Error().Err(err).Str("event_id", e.ID).Msg("seed event failed")
				continue
			}
			res.Events++
		}
	}

	res.FluencyQuestions, err = seedFluencyQuestions(ctx, NewFluencyRepo(db), now)
	if err != nil {
		return res, err
	}

	if res.Internships > 0 || res.Events > 0 || res.FluencyQuestions > 0 {
		zlog.Info().Int("internships", res.Internships).Int("events", res.Events).
			Int("fluency_questions", res.FluencyQuestions).Msg("sample data seeded")
	}
	return res, nil
}
