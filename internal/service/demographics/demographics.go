// Package demographics answers a fixed set of aggregate questions over a
// census dataset: race counts, mean ages, education/income percentages,
// work-hour extremes, and per-country earning rates.
package demographics

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/statlab/census-api/internal/domain"
)

// NoData marks an answer that has no records behind it, e.g. the top
// occupation of an empty dataset.
const NoData = "No data"

// Summary holds every named answer produced by Analyze. Percentages are
// rounded to the analyzer's configured precision; mean ages to one decimal.
type Summary struct {
	// RaceCount maps each race category to its record count.
	RaceCount map[string]int `json:"race_count"`

	// AverageAgeBySex maps each sex category to the mean age of its records.
	AverageAgeBySex map[string]float64 `json:"average_age_by_sex"`

	// PercentageBachelors is the share of all records with a Bachelors degree.
	PercentageBachelors float64 `json:"percentage_bachelors"`

	// BachelorsRich and NonBachelorsRich are the shares earning >50K within
	// the Bachelors and non-Bachelors subgroups respectively.
	BachelorsRich    float64 `json:"bachelors_rich"`
	NonBachelorsRich float64 `json:"non_bachelors_rich"`

	// HigherEducationRich and LowerEducationRich are the shares earning >50K
	// within the advanced-degree (Bachelors/Masters/Doctorate) subgroup and
	// its complement.
	HigherEducationRich float64 `json:"higher_education_rich"`
	LowerEducationRich  float64 `json:"lower_education_rich"`

	// MinWorkHours is the smallest hours-per-week value in the dataset, and
	// MinHoursRich the share earning >50K among records at exactly that value.
	MinWorkHours int     `json:"min_work_hours"`
	MinHoursRich float64 `json:"min_hours_rich"`

	// CountryRich maps each native country to its share of records earning
	// >50K. HighestEarningCountry is the country with the largest share.
	CountryRich                     map[string]float64 `json:"country_rich"`
	HighestEarningCountry           string             `json:"highest_earning_country"`
	HighestEarningCountryPercentage float64            `json:"highest_earning_country_percentage"`

	// TopOccupation is the most frequent occupation among records from the
	// highest-earning country.
	TopOccupation string `json:"top_occupation"`
}

// Overview describes the dataset itself rather than any subgroup.
type Overview struct {
	TotalRecords   int     `json:"total_records"`
	FieldCount     int     `json:"field_count"`
	RichPercentage float64 `json:"rich_percentage"`
}

// Analyzer runs the demographic queries. It is stateless between calls;
// precision controls how many decimal places percentage answers keep.
type Analyzer struct {
	precision int
	logger    *slog.Logger
}

// NewAnalyzer creates an Analyzer rounding percentages to the given number
// of decimal places.
func NewAnalyzer(precision int, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{precision: precision, logger: logger}
}

// Analyze computes the full demographic summary for the dataset. Each answer
// is an independent pass over the rows; none mutates shared state. An empty
// dataset yields zero counts, zero percentages, and NoData markers rather
// than an error. Returns domain.ErrInvalidRecord when a row violates the
// schema invariants.
func (a *Analyzer) Analyze(ds domain.Dataset) (*Summary, error) {
	for i := range ds {
		if err := ds[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w: %w", i, domain.ErrInvalidRecord, err)
		}
	}

	s := &Summary{
		RaceCount:       make(map[string]int),
		AverageAgeBySex: make(map[string]float64),
		CountryRich:     make(map[string]float64),
		TopOccupation:   NoData,
	}

	// How many of each race are represented?
	for i := range ds {
		s.RaceCount[ds[i].Race]++
	}

	// Mean age for each sex category.
	ageSum := make(map[string]int)
	ageCount := make(map[string]int)
	for i := range ds {
		ageSum[ds[i].Sex] += ds[i].Age
		ageCount[ds[i].Sex]++
	}
	for sex, n := range ageCount {
		s.AverageAgeBySex[sex] = roundTo(float64(ageSum[sex])/float64(n), 1)
	}

	// Share of all records holding a Bachelors degree.
	bachelors := 0
	for i := range ds {
		if ds[i].Education == domain.EducationBachelors {
			bachelors++
		}
	}
	s.PercentageBachelors = a.percentage(bachelors, len(ds))

	// Share earning >50K inside the Bachelors subgroup and its complement.
	var bachelorsRich, nonBachelors, nonBachelorsRich int
	for i := range ds {
		if ds[i].Education == domain.EducationBachelors {
			if ds[i].EarnsOver50K() {
				bachelorsRich++
			}
		} else {
			nonBachelors++
			if ds[i].EarnsOver50K() {
				nonBachelorsRich++
			}
		}
	}
	s.BachelorsRich = a.percentage(bachelorsRich, bachelors)
	s.NonBachelorsRich = a.percentage(nonBachelorsRich, nonBachelors)

	// Same split for any advanced degree (Bachelors, Masters, Doctorate).
	var higher, higherRich, lower, lowerRich int
	for i := range ds {
		if ds[i].HasAdvancedDegree() {
			higher++
			if ds[i].EarnsOver50K() {
				higherRich++
			}
		} else {
			lower++
			if ds[i].EarnsOver50K() {
				lowerRich++
			}
		}
	}
	s.HigherEducationRich = a.percentage(higherRich, higher)
	s.LowerEducationRich = a.percentage(lowerRich, lower)

	// Minimum hours-per-week and the earning rate at exactly that minimum.
	if len(ds) > 0 {
		minHours := ds[0].HoursPerWeek
		for i := range ds {
			if ds[i].HoursPerWeek < minHours {
				minHours = ds[i].HoursPerWeek
			}
		}
		var minWorkers, minWorkersRich int
		for i := range ds {
			if ds[i].HoursPerWeek == minHours {
				minWorkers++
				if ds[i].EarnsOver50K() {
					minWorkersRich++
				}
			}
		}
		s.MinWorkHours = minHours
		s.MinHoursRich = a.percentage(minWorkersRich, minWorkers)
	}

	// Earning rate per country, then the country with the highest rate.
	countryTotal := make(map[string]int)
	countryRich := make(map[string]int)
	for i := range ds {
		countryTotal[ds[i].NativeCountry]++
		if ds[i].EarnsOver50K() {
			countryRich[ds[i].NativeCountry]++
		}
	}
	countries := make([]string, 0, len(countryTotal))
	for country := range countryTotal {
		countries = append(countries, country)
	}
	// Ties broken by name to keep the answer deterministic.
	sort.Strings(countries)
	for i, country := range countries {
		pct := a.percentage(countryRich[country], countryTotal[country])
		s.CountryRich[country] = pct
		if i == 0 || pct > s.HighestEarningCountryPercentage {
			s.HighestEarningCountry = country
			s.HighestEarningCountryPercentage = pct
		}
	}

	// Most frequent occupation among records from the top-earning country.
	if len(ds) > 0 {
		occupations := make(map[string]int)
		for i := range ds {
			if ds[i].NativeCountry == s.HighestEarningCountry {
				occupations[ds[i].Occupation]++
			}
		}
		top, topCount := NoData, 0
		names := make([]string, 0, len(occupations))
		for name := range occupations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if occupations[name] > topCount {
				top, topCount = name, occupations[name]
			}
		}
		s.TopOccupation = top
	}

	a.logger.Debug("demographic analysis complete",
		"records", len(ds),
		"races", len(s.RaceCount),
		"countries", len(s.CountryRich))

	return s, nil
}

// Overview reports the dataset-level metrics shown alongside the summary:
// record count, schema width, and the overall share earning >50K.
func (a *Analyzer) Overview(ds domain.Dataset) Overview {
	rich := 0
	for i := range ds {
		if ds[i].EarnsOver50K() {
			rich++
		}
	}
	return Overview{
		TotalRecords:   len(ds),
		FieldCount:     len(domain.AllColumns),
		RichPercentage: a.percentage(rich, len(ds)),
	}
}

// percentage returns 100*part/total rounded to the configured precision.
// An empty subgroup yields 0 rather than NaN.
func (a *Analyzer) percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(100*float64(part)/float64(total), a.precision)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
