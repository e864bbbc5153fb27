package domain

import "errors"

// IncomeBracket is the binary salary classification used by the census data.
type IncomeBracket string

// The only two income bracket literals the dataset may contain.
const (
	IncomeOver50K  IncomeBracket = ">50K"
	IncomeUnder50K IncomeBracket = "<=50K"
)

// Education levels that count as an advanced degree.
const (
	EducationBachelors = "Bachelors"
	EducationMasters   = "Masters"
	EducationDoctorate = "Doctorate"
)

// Common validation errors for PersonRecord
var (
	ErrNegativeAge   = errors.New("age cannot be negative")
	ErrNegativeHours = errors.New("hours-per-week cannot be negative")
	ErrInvalidIncome = errors.New(`income bracket must be ">50K" or "<=50K"`)
)

// Dataset column names, matching the census CSV header. RequiredColumns are
// the ones the analysis reads; the rest populate when present.
var (
	RequiredColumns = []string{
		"age", "education", "race", "sex", "occupation",
		"hours-per-week", "native-country", "salary",
	}

	AllColumns = []string{
		"age", "workclass", "education", "education-num", "marital-status",
		"occupation", "relationship", "race", "sex", "capital-gain",
		"capital-loss", "hours-per-week", "native-country", "salary",
	}
)

// PersonRecord is one row of the demographic dataset: a single individual
// described by the fixed 1994 census schema.
type PersonRecord struct {
	Age            int           `json:"age"`
	Workclass      string        `json:"workclass,omitempty"`
	Education      string        `json:"education"`
	EducationYears int           `json:"education_num,omitempty"`
	MaritalStatus  string        `json:"marital_status,omitempty"`
	Occupation     string        `json:"occupation"`
	Relationship   string        `json:"relationship,omitempty"`
	Race           string        `json:"race"`
	Sex            string        `json:"sex"`
	CapitalGain    int           `json:"capital_gain,omitempty"`
	CapitalLoss    int           `json:"capital_loss,omitempty"`
	HoursPerWeek   int           `json:"hours_per_week"`
	NativeCountry  string        `json:"native_country"`
	Income         IncomeBracket `json:"salary"`
}

// Validate checks if the PersonRecord has valid data.
// Returns an error if any field fails validation.
func (p *PersonRecord) Validate() error {
	if p.Age < 0 {
		return ErrNegativeAge
	}
	if p.HoursPerWeek < 0 {
		return ErrNegativeHours
	}
	if p.Income != IncomeOver50K && p.Income != IncomeUnder50K {
		return ErrInvalidIncome
	}
	return nil
}

// HasAdvancedDegree reports whether the person holds a Bachelors, Masters,
// or Doctorate degree.
func (p *PersonRecord) HasAdvancedDegree() bool {
	switch p.Education {
	case EducationBachelors, EducationMasters, EducationDoctorate:
		return true
	}
	return false
}

// EarnsOver50K reports whether the person is in the upper income bracket.
func (p *PersonRecord) EarnsOver50K() bool {
	return p.Income == IncomeOver50K
}

// Dataset is an ordered collection of person records.
type Dataset []PersonRecord
