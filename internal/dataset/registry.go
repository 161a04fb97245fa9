package dataset

import (
	"fmt"
	"math/rand/v2"
)

// Builder constructs one dataset. Literal builders ignore the random
// source and row count; the two procedural builders use both.
type Builder func(r *rand.Rand, largeRows int) *Dataset

type entry struct {
	name  string
	build Builder
}

func literal(build func() *Dataset) Builder {
	return func(*rand.Rand, int) *Dataset { return build() }
}

// registry lists every dataset in curriculum order. Order matters for
// output: files are generated in the order the exercises introduce
// them.
var registry = []entry{
	{"ngo_projects", literal(ngoProjects)},
	{"beneficiary_data", literal(beneficiaryData)},
	{"large_ngo_projects", LargeNGOProjects},
	{"beneficiary_data_missing", literal(beneficiaryDataMissing)},
	{"project_updates", literal(projectUpdates)},
	{"health_data", literal(healthData)},
	{"messy_data", literal(messyData)},
	{"item_data", literal(itemData)},
	{"advanced_messy_data", literal(advancedMessyData)},
	{"transaction_data", literal(transactionData)},
	{"large_country_data", LargeCountryData},
	{"ngo_projects_cleaned", literal(ngoProjectsCleaned)},
	{"beneficiary_records", literal(beneficiaryRecords)},
	{"aid_distribution", literal(aidDistribution)},
	{"beneficiary_data_dedup", literal(beneficiaryDataDedup)},
	{"event_logs", literal(eventLogs)},
	{"partner_organizations", literal(partnerOrganizations)},
	{"health_records", literal(healthRecords)},
	{"school_data", literal(schoolData)},
	{"district_poverty", literal(districtPoverty)},
}

// Names returns all dataset names in generation order
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Build constructs a single dataset by name
func Build(name string, r *rand.Rand, largeRows int) (*Dataset, error) {
	for _, e := range registry {
		if e.name == name {
			return e.build(r, largeRows), nil
		}
	}
	return nil, fmt.Errorf("unknown dataset: %s", name)
}

// BuildAll constructs every registered dataset in generation order
func BuildAll(r *rand.Rand, largeRows int) []*Dataset {
	datasets := make([]*Dataset, len(registry))
	for i, e := range registry {
		datasets[i] = e.build(r, largeRows)
	}
	return datasets
}
