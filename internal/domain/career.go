package domain

type GrowthOutlook string

const (
	GrowthExcellent GrowthOutlook = "excellent"
	GrowthGood      GrowthOutlook = "good"
	GrowthAverage   GrowthOutlook = "average"
	GrowthLimited   GrowthOutlook = "limited"
)

type DemandLevel string

const (
	DemandHigh   DemandLevel = "high"
	DemandMedium DemandLevel = "medium"
	DemandLow    DemandLevel = "low"
)

type SalaryRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// MarketContext carries the Nigerian labour-market metadata attached to each
// career profile.
type MarketContext struct {
	Demand             DemandLevel `json:"demand"`
	LocalOpportunities []string    `json:"local_opportunities"`
	AverageSalary      string      `json:"average_salary"`
}

// Career is one profile of the static catalog. The catalog is immutable for
// the lifetime of the process.
type Career struct {
	ID                    string        `json:"id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	RequiredSkills        []string      `json:"required_skills"`
	EducationRequirements []string      `json:"education_requirements"`
	SalaryRange           SalaryRange   `json:"salary_range"`
	GrowthOutlook         GrowthOutlook `json:"growth_outlook"`
	WorkEnvironment       []string      `json:"work_environment"`
	PersonalityFit        []string      `json:"personality_fit"`
	IndustryTags          []string      `json:"industry_tags"`
	MarketContext         MarketContext `json:"market_context"`
}

// PrimaryIndustry is the first industry tag, used to diversify ranked results.
func (c Career) PrimaryIndustry() string {
	if len(c.IndustryTags) == 0 {
		return ""
	}
	return c.IndustryTags[0]
}
