package resume

import (
	"time"

	"github.com/google/uuid"
)

// Resume is the root aggregate a user edits. It is owned by exactly one
// user and always references a template known to the registry.
type Resume struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	Title      string   `json:"title"`
	TemplateID string   `json:"templateId"`
	Content    Content  `json:"content"`
	Design     Design   `json:"design"`
	Metadata   Metadata `json:"metadata"`
}

// Content holds the editable body of a resume.
type Content struct {
	ContactInfo    ContactInfo      `json:"contactInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         Skills           `json:"skills"`
}

// ContactInfo is free text throughout; format validation is a
// presentation concern.
type ContactInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	GitHub    string `json:"github"`
}

// WorkExperience is a child entity addressed by its generated id, never by
// position. Description bullets are positionally addressable.
type WorkExperience struct {
	ID               string   `json:"id"`
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Description      []string `json:"description"`
}

// Education is a child entity addressed by its generated id.
type Education struct {
	ID             string   `json:"id"`
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location"`
	GraduationDate string   `json:"graduationDate"`
	GPA            *float64 `json:"gpa,omitempty"`
	Coursework     []string `json:"coursework,omitempty"`
}

// Skills lists preserve order and duplicates verbatim from user input.
type Skills struct {
	Technical  []string            `json:"technical"`
	Soft       []string            `json:"soft"`
	Categories map[string][]string `json:"categories"`
}

// Design carries visual styling only; it never affects section placement.
type Design struct {
	PrimaryColor string  `json:"primaryColor"`
	FontFamily   string  `json:"fontFamily"`
	FontSize     float64 `json:"fontSize"`
}

// Metadata tracks lifecycle timestamps. CreatedAt is immutable; UpdatedAt
// is refreshed on every persisted mutation.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultTemplateID is the template assigned to freshly created resumes.
// It must reference a non-premium template.
const DefaultTemplateID = "modern_clean"

// NewDefault returns an empty resume owned by ownerID with a fresh id,
// default design values and createdAt == updatedAt == now.
func NewDefault(ownerID string, now time.Time) Resume {
	return Resume{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		Title:      "Untitled Resume",
		TemplateID: DefaultTemplateID,
		Content: Content{
			WorkExperience: []WorkExperience{},
			Education:      []Education{},
			Skills: Skills{
				Technical:  []string{},
				Soft:       []string{},
				Categories: map[string][]string{},
			},
		},
		Design: Design{
			PrimaryColor: "#00BFFF",
			FontFamily:   "Inter",
			FontSize:     10,
		},
		Metadata: Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

// Sample returns the seeded example resume owned by ownerID. New users get
// it as a starting point instead of a blank page.
func Sample(ownerID string, now time.Time) Resume {
	r := NewDefault(ownerID, now)
	r.Title = "My First Resume"
	r.Content.ContactInfo = ContactInfo{
		FullName:  "John Doe",
		Email:     "john.doe@email.com",
		Phone:     "123-456-7890",
		Location:  "San Francisco, CA",
		LinkedIn:  "linkedin.com/in/johndoe",
		Portfolio: "johndoe.dev",
		GitHub:    "github.com/johndoe",
	}
	r.Content.Summary = "Highly motivated and results-oriented Software Engineer with 5+ years of experience in developing and scaling web applications. Proficient in JavaScript, React, and Node.js. Passionate about creating intuitive user experiences and solving complex problems."
	r.Content.WorkExperience = []WorkExperience{
		{
			ID:               uuid.NewString(),
			JobTitle:         "Senior Software Engineer",
			Company:          "Tech Solutions Inc.",
			Location:         "San Francisco, CA",
			StartDate:        "01/2020",
			EndDate:          "Present",
			CurrentlyWorking: true,
			Description: []string{
				"Led the development of a new microservices architecture, improving system scalability by 40%.",
				"Mentored junior engineers, fostering a culture of growth and knowledge sharing.",
				"Reduced API response times by 200ms through performance optimization techniques.",
			},
		},
		{
			ID:        uuid.NewString(),
			JobTitle:  "Software Engineer",
			Company:   "Innovate Corp.",
			Location:  "Palo Alto, CA",
			StartDate: "06/2017",
			EndDate:   "12/2019",
			Description: []string{
				"Developed and maintained features for a large-scale e-commerce platform using React and Redux.",
				"Collaborated with a team of 10 engineers in an Agile environment.",
				"Contributed to a 15% increase in user engagement by redesigning the checkout flow.",
			},
		},
	}
	gpa1 := 3.9
	gpa2 := 3.8
	r.Content.Education = []Education{
		{
			ID:             uuid.NewString(),
			Degree:         "Master of Science in Computer Science",
			Institution:    "Stanford University",
			Location:       "Stanford, CA",
			GraduationDate: "05/2017",
			GPA:            &gpa1,
		},
		{
			ID:             uuid.NewString(),
			Degree:         "Bachelor of Science in Computer Science",
			Institution:    "University of California, Berkeley",
			Location:       "Berkeley, CA",
			GraduationDate: "05/2015",
			GPA:            &gpa2,
		},
	}
	r.Content.Skills = Skills{
		Technical: []string{"JavaScript", "TypeScript", "React", "Node.js", "Express", "PostgreSQL", "Docker", "AWS"},
		Soft:      []string{"Team Leadership", "Agile Methodologies", "Problem Solving", "Communication"},
		Categories: map[string][]string{
			"Programming Languages": {"JavaScript", "TypeScript", "Python"},
			"Frameworks/Libraries":  {"React", "Node.js", "Express.js"},
			"Databases":             {"PostgreSQL", "MongoDB", "Redis"},
		},
	}
	return r
}

// Clone returns a deep copy. Saves and AI calls operate on clones so that
// edits made while a call is in flight cannot leak into its snapshot.
func (r Resume) Clone() Resume {
	out := r
	out.Content.WorkExperience = make([]WorkExperience, len(r.Content.WorkExperience))
	for i, exp := range r.Content.WorkExperience {
		exp.Description = append([]string(nil), exp.Description...)
		out.Content.WorkExperience[i] = exp
	}
	out.Content.Education = make([]Education, len(r.Content.Education))
	for i, edu := range r.Content.Education {
		if edu.GPA != nil {
			gpa := *edu.GPA
			edu.GPA = &gpa
		}
		edu.Coursework = append([]string(nil), edu.Coursework...)
		out.Content.Education[i] = edu
	}
	out.Content.Skills.Technical = append([]string(nil), r.Content.Skills.Technical...)
	out.Content.Skills.Soft = append([]string(nil), r.Content.Skills.Soft...)
	if r.Content.Skills.Categories != nil {
		out.Content.Skills.Categories = make(map[string][]string, len(r.Content.Skills.Categories))
		for label, items := range r.Content.Skills.Categories {
			out.Content.Skills.Categories[label] = append([]string(nil), items...)
		}
	}
	return out
}
