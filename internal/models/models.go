package models

// Applicant is the canonical record held by the upstream applicants API.
// Field names match the wire contract exactly; the optional profile links are
// pointers so a blank form input travels as null, never as "".
type Applicant struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Semester  string `json:"semester"`

	PersonalEmail string `json:"personal_email"`
	BracuEmail    string `json:"bracu_email"`
	Mobile        string `json:"mobile"`
	Address       string `json:"address"`

	// Bio is synthesized from the transient hobbies/blood-group inputs at
	// submission time; those inputs have no column of their own.
	Bio string `json:"bio"`

	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	RS          string `json:"rs"`

	// First choice at index 0, second choice (if any) at index 1.
	PreferredDepartments []string `json:"preferred_departments"`

	FacebookProfileLink string  `json:"facebook_profile_link"`
	LinkedinProfileLink *string `json:"linkedin_profile_link"`
	GithubProfileLink   *string `json:"github_profile_link"`
}

// ListPage is one page of the upstream applicant collection. It is replaced
// wholesale on every fetch; pages are never merged or cached.
type ListPage struct {
	Items   []Applicant `json:"items"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// PerPage is the fixed dashboard page size.
const PerPage = 50

// Fixed option sets for the current deployment. The record type itself stays
// loose (plain strings); these sets only gate what the form accepts.
var (
	Departments = []string{
		"IT",
		"Arts & Design",
		"Editorial & Publications",
		"Finance & Marketing",
		"Event Management",
		"Research & Project Management",
		"Strategic Planning",
	}

	RSBatches = []string{"N/A", "62", "63", "64", "65", "66", "67", "68"}

	BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-", "N/A"}

	Genders = []string{"male", "female"}
)
