package census

import (
	"math/rand"

	"github.com/statlab/census-api/internal/domain"
)

// Category sets and weights for generated rows, chosen to resemble the
// distributions of the 1994 census extract.
var (
	sampleWorkclasses = []string{"Private", "Self-emp-not-inc", "State-gov", "Federal-gov"}
	sampleEducations  = []string{"Bachelors", "HS-grad", "Masters", "Doctorate", "11th", "Some-college"}
	sampleMaritals    = []string{"Never-married", "Married-civ-spouse", "Divorced", "Widowed"}
	sampleOccupations = []string{"Prof-specialty", "Exec-managerial", "Adm-clerical", "Sales"}
	sampleRelations   = []string{"Not-in-family", "Husband", "Wife", "Own-child"}
	sampleSexes       = []string{"Male", "Female"}

	sampleRaces = []weightedChoice{
		{"White", 0.85},
		{"Black", 0.10},
		{"Asian-Pac-Islander", 0.03},
		{"Amer-Indian-Eskimo", 0.015},
		{"Other", 0.005},
	}
	sampleCountries = []weightedChoice{
		{"United-States", 0.89},
		{"India", 0.04},
		{"Iran", 0.02},
		{"Cuba", 0.03},
		{"Mexico", 0.02},
	}
	sampleIncomes = []weightedChoice{
		{string(domain.IncomeUnder50K), 0.76},
		{string(domain.IncomeOver50K), 0.24},
	}

	educationYears = map[string]int{
		"Bachelors":    13,
		"HS-grad":      9,
		"Masters":      14,
		"Doctorate":    16,
		"11th":         7,
		"Some-college": 10,
	}
)

type weightedChoice struct {
	value  string
	weight float64
}

// Generator produces schema-conformant sample datasets. The same seed always
// yields the same rows, so generated data is reproducible across requests.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Dataset generates n sample person records.
func (g *Generator) Dataset(n int) domain.Dataset {
	ds := make(domain.Dataset, 0, n)
	for i := 0; i < n; i++ {
		education := g.uniform(sampleEducations)
		ds = append(ds, domain.PersonRecord{
			Age:            17 + g.rng.Intn(73),
			Workclass:      g.uniform(sampleWorkclasses),
			Education:      education,
			EducationYears: educationYears[education],
			MaritalStatus:  g.uniform(sampleMaritals),
			Occupation:     g.uniform(sampleOccupations),
			Relationship:   g.uniform(sampleRelations),
			Race:           g.weighted(sampleRaces),
			Sex:            g.uniform(sampleSexes),
			CapitalGain:    g.rng.Intn(10000),
			CapitalLoss:    g.rng.Intn(1000),
			HoursPerWeek:   1 + g.rng.Intn(79),
			NativeCountry:  g.weighted(sampleCountries),
			Income:         domain.IncomeBracket(g.weighted(sampleIncomes)),
		})
	}
	return ds
}

func (g *Generator) uniform(choices []string) string {
	return choices[g.rng.Intn(len(choices))]
}

func (g *Generator) weighted(choices []weightedChoice) string {
	r := g.rng.Float64()
	acc := 0.0
	for _, c := range choices {
		acc += c.weight
		if r < acc {
			return c.value
		}
	}
	// Weights may not sum exactly to 1 in floating point.
	return choices[len(choices)-1].value
}
