package dataset

import (
	"math/rand/v2"
	"time"
)

// DefaultLargeRows is the row count for the two procedural datasets
const DefaultLargeRows = 100000

var largeRegions = []string{"East Africa", "South Asia", "West Africa", "Latin America"}

var largeStatuses = []string{"Active", "Completed", "Pending"}

// countryVariants deliberately spells the same real-world entities
// several ways, one of them with leading whitespace, for the
// normalization exercises.
var countryVariants = []string{
	"United States",
	"USA",
	"United States of America",
	"   united states",
	"Canada",
	"Mexico",
	"UK",
	"United Kingdom",
}

const (
	budgetMin = 50000
	budgetMax = 500000 // exclusive
)

// Event dates are drawn from a daily range starting 2020-01-01. The
// range is end-exclusive at 2023-12-31, so the last possible event
// date is 2023-12-30; report dates may run past it.
var eventEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

const eventRangeDays = 1460

// LargeNGOProjects builds the 100,000-row project dataset: a
// sequential identifier plus three independently sampled columns.
func LargeNGOProjects(r *rand.Rand, rows int) *Dataset {
	ids := make([]Cell, rows)
	regions := make([]Cell, rows)
	statuses := make([]Cell, rows)
	budgets := make([]Cell, rows)
	for i := 0; i < rows; i++ {
		ids[i] = Int(int64(i + 1))
		regions[i] = Str(largeRegions[r.IntN(len(largeRegions))])
		statuses[i] = Str(largeStatuses[r.IntN(len(largeStatuses))])
		budgets[i] = Int(int64(budgetMin + r.IntN(budgetMax-budgetMin)))
	}
	return &Dataset{
		Name: "large_ngo_projects",
		Columns: []Column{
			{Name: "ProjectID", Kind: KindInt, Cells: ids},
			{Name: "Region", Kind: KindString, Cells: regions},
			{Name: "Status", Kind: KindString, Cells: statuses},
			{Name: "Budget", Kind: KindInt, Cells: budgets},
		},
	}
}

// LargeCountryData builds the 100,000-row country dataset. The report
// date is not sampled independently: it is the event date plus a
// uniform whole-day offset in [1, 29].
func LargeCountryData(r *rand.Rand, rows int) *Dataset {
	countries := make([]Cell, rows)
	eventDates := make([]Cell, rows)
	reportDates := make([]Cell, rows)
	for i := 0; i < rows; i++ {
		countries[i] = Str(countryVariants[r.IntN(len(countryVariants))])
		event := eventEpoch.AddDate(0, 0, r.IntN(eventRangeDays))
		eventDates[i] = Date(event)
		reportDates[i] = Date(event.AddDate(0, 0, 1+r.IntN(29)))
	}
	return &Dataset{
		Name: "large_country_data",
		Columns: []Column{
			{Name: "Country", Kind: KindString, Cells: countries},
			{Name: "EventDate", Kind: KindDate, Cells: eventDates},
			{Name: "ReportDate", Kind: KindDate, Cells: reportDates},
		},
	}
}

// CountryVariants returns the fixed vocabulary used by LargeCountryData
func CountryVariants() []string {
	out := make([]string, len(countryVariants))
	copy(out, countryVariants)
	return out
}

// EventDateRange returns the inclusive bounds of possible event dates
func EventDateRange() (first, last time.Time) {
	return eventEpoch, eventEpoch.AddDate(0, 0, eventRangeDays-1)
}
