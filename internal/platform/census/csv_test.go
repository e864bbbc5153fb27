package census

import (
	"strings"
	"testing"

	"github.com/statlab/census-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = `age,workclass,education,education-num,marital-status,occupation,relationship,race,sex,capital-gain,capital-loss,hours-per-week,native-country,salary
39,State-gov,Bachelors,13,Never-married,Adm-clerical,Not-in-family,White,Male,2174,0,40,United-States,<=50K
50,Self-emp-not-inc,Bachelors,13,Married-civ-spouse,Exec-managerial,Husband,White,Male,0,0,13,United-States,>50K
`

func TestReadCSV(t *testing.T) {
	t.Parallel()

	ds, err := ReadCSV(strings.NewReader(validCSV))
	require.NoError(t, err)
	require.Len(t, ds, 2)

	first := ds[0]
	assert.Equal(t, 39, first.Age)
	assert.Equal(t, "State-gov", first.Workclass)
	assert.Equal(t, "Bachelors", first.Education)
	assert.Equal(t, 13, first.EducationYears)
	assert.Equal(t, "Adm-clerical", first.Occupation)
	assert.Equal(t, "White", first.Race)
	assert.Equal(t, "Male", first.Sex)
	assert.Equal(t, 2174, first.CapitalGain)
	assert.Equal(t, 40, first.HoursPerWeek)
	assert.Equal(t, "United-States", first.NativeCountry)
	assert.Equal(t, domain.IncomeUnder50K, first.Income)

	assert.Equal(t, domain.IncomeOver50K, ds[1].Income)
}

func TestReadCSVColumnOrderIrrelevant(t *testing.T) {
	t.Parallel()

	csvData := `salary,age,education,race,sex,occupation,hours-per-week,native-country
>50K,45,Masters,White,Female,Prof-specialty,50,India
`
	ds, err := ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, 45, ds[0].Age)
	assert.Equal(t, "India", ds[0].NativeCountry)
	assert.Equal(t, domain.IncomeOver50K, ds[0].Income)
	assert.Empty(t, ds[0].Workclass, "optional columns default to empty")
}

func TestReadCSVMissingColumns(t *testing.T) {
	t.Parallel()

	csvData := `age,education,race,sex
39,Bachelors,White,Male
`
	_, err := ReadCSV(strings.NewReader(csvData))
	require.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "salary")
	assert.Contains(t, err.Error(), "native-country")
}

func TestReadCSVEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	header := strings.SplitN(validCSV, "\n", 2)[0] + "\n"
	ds, err := ReadCSV(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, ds, "header-only file is an empty dataset, not an error")
}

func TestReadCSVInvalidRows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		row  string
	}{
		{"non-integer age", "abc,Private,HS-grad,9,Divorced,Sales,Not-in-family,White,Male,0,0,40,Cuba,<=50K"},
		{"bad income literal", "30,Private,HS-grad,9,Divorced,Sales,Not-in-family,White,Male,0,0,40,Cuba,50K"},
		{"non-integer hours", "30,Private,HS-grad,9,Divorced,Sales,Not-in-family,White,Male,0,0,forty,Cuba,<=50K"},
	}

	header := strings.SplitN(validCSV, "\n", 2)[0]
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(header + "\n" + tc.row + "\n"))
			require.ErrorIs(t, err, domain.ErrInvalidRecord)
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}
