package dataset

// The literal datasets below are golden fixtures: every cell, including
// deliberate whitespace, casing inconsistencies, misspellings, and
// missing markers, is part of the curriculum contract and must be
// reproduced exactly.

func intCol(name string, vals ...int64) Column {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = Int(v)
	}
	return Column{Name: name, Kind: KindInt, Cells: cells}
}

func floatCol(name string, vals ...float64) Column {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = Float(v)
	}
	return Column{Name: name, Kind: KindFloat, Cells: cells}
}

func strCol(name string, vals ...string) Column {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = Str(v)
	}
	return Column{Name: name, Kind: KindString, Cells: cells}
}

func ngoProjects() *Dataset {
	return &Dataset{
		Name: "ngo_projects",
		Columns: []Column{
			intCol("ProjectID", 101, 102, 103, 104, 105),
			strCol("Region", "East Africa", "South Asia", "West Africa", "East Africa", "South Asia"),
			strCol("StartDate", "2023-01-15", "2023-02-01", "2023-03-10", "2023-04-05", "2023-05-20"),
			strCol("EndDate", "2023-06-30", "2023-07-15", "2023-08-20", "2023-09-10", "2023-10-30"),
			intCol("Budget", 150000, 200000, 120000, 180000, 250000),
		},
	}
}

func beneficiaryData() *Dataset {
	return &Dataset{
		Name: "beneficiary_data",
		Columns: []Column{
			intCol("BeneficiaryID", 1, 2, 3, 4, 5),
			intCol("Age", 25, 34, 28, 40, 30),
			strCol("Gender", "Female", "Male", "Female", "Male", "Female"),
			strCol("Location", "Camp A", "Village B", "Camp A", "Village C", "Camp B"),
			strCol("AssistanceType", "Food", "Shelter", "Medical", "Food", "Shelter"),
		},
	}
}

func beneficiaryDataMissing() *Dataset {
	return &Dataset{
		Name: "beneficiary_data_missing",
		Columns: []Column{
			intCol("BeneficiaryID", 1, 2, 3, 4, 5, 6, 7),
			{Name: "Age", Kind: KindInt, Cells: []Cell{
				Int(25), Int(34), Missing(), Int(45), Int(19), Missing(), Int(50),
			}},
			strCol("Gender", "Female", "Male", "Female", "Male", "Female", "Male", "Female"),
			strCol("Location", "Camp A", "Village B", "Camp A", "Village C", "Camp B", "Village B", "Camp A"),
			{Name: "AssistanceType", Kind: KindString, Cells: []Cell{
				Str("Food"), Str("Shelter"), Missing(), Str("Food"), Str("Medical"), Str("Shelter"), Str("Food"),
			}},
		},
	}
}

func projectUpdates() *Dataset {
	return &Dataset{
		Name: "project_updates",
		Columns: []Column{
			intCol("UpdateID", 1, 2, 3, 4, 5, 6),
			intCol("ProjectID", 101, 102, 101, 103, 102, 104),
			strCol("Date", "2023-01-20", "2023-02-05", "2023-03-15", "2023-04-10", "2023-05-25", "2023-06-05"),
			{Name: "Status", Kind: KindString, Cells: []Cell{
				Str("On Track"), Str("Completed"), Missing(), Str("Delayed"), Str("On Track"), Missing(),
			}},
			{Name: "Notes", Kind: KindString, Cells: []Cell{
				Str("Initial report"), Str("Finalized"), Str("Needs review"), Missing(), Str("Mid-term update"), Missing(),
			}},
		},
	}
}

func healthData() *Dataset {
	d := &Dataset{
		Name: "health_data",
		Columns: []Column{
			intCol("PatientID", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
			intCol("Age", 30, 45, 22, 60, 35, 50, 28, 42, 55, 65),
			intCol("Weight", 70, 85, 60, 90, 75, 80, 65, 78, 88, 92),
			strCol("Diagnosis", "Flu", "Malaria", "Flu", "Typhoid", "Flu", "Malaria", "Flu", "Typhoid", "Malaria", "Flu"),
			{Name: "Medication", Kind: KindString, Cells: []Cell{
				Str("A"), Str("B"), Missing(), Str("C"), Str("A"), Str("B"), Missing(), Str("C"), Str("B"), Missing(),
			}},
		},
	}
	// Derived rule: medication is always absent for Flu diagnoses,
	// overriding whatever the literal cell says.
	diag := d.Column("Diagnosis")
	med := d.Column("Medication")
	for i, cell := range diag.Cells {
		if cell.Text() == "Flu" {
			med.Cells[i] = Missing()
		}
	}
	return d
}

func messyData() *Dataset {
	return &Dataset{
		Name: "messy_data",
		Columns: []Column{
			strCol("ProjectID", "101", "102", "103 ", "104", "105"),
			strCol("Region", "East Africa ", "south asia", "WEST AFRICA", "East Africa", "South Asia"),
			strCol("Status", "Active", "Completed ", "Pending", "active", "Completed"),
			// Budget is deliberately text, not numeric.
			strCol("Budget", "150000", "200000", "120000", "180000", "250000"),
		},
	}
}

func itemData() *Dataset {
	return &Dataset{
		Name: "item_data",
		Columns: []Column{
			strCol("Item", "   apple", "BANANA ", "orange", " GRAPES  "),
			strCol("Quantity", "10", "5", "12", "8"),
			strCol("Price", "1.20", "0.75", "2.50", "3.00"),
		},
	}
}

func advancedMessyData() *Dataset {
	return &Dataset{
		Name: "advanced_messy_data",
		Columns: []Column{
			strCol("ProjectCode", "NGO-101", "PROJ_102", "NGO-103", "P-104", "NGO-105"),
			strCol("Description",
				"Food distribution in area A",
				"Shelter for displaced families",
				"Medical aid for children",
				"Water sanitation project",
				"Education support"),
			strCol("StartDate", "2023/01/15", "02-01-2023", "March 10, 2023", "2023-04-05", "2023-05-20"),
			strCol("Beneficiaries", "1,500", "2,000", "1,200", "1,800", "2,500"),
		},
	}
}

func transactionData() *Dataset {
	return &Dataset{
		Name: "transaction_data",
		Columns: []Column{
			strCol("TransactionID", "TRX-ABC-123", "TXN_DEF_456", "GHI789", "TRX-JKL-010"),
			strCol("Timestamp", "2023-01-01 10:30:00", "Jan 2, 23 11:00 AM", "03/03/2023 13:45", "2023-04-04 09:00:00"),
			intCol("Amount", 100, 200, 150, 300),
		},
	}
}

func ngoProjectsCleaned() *Dataset {
	return &Dataset{
		Name: "ngo_projects_cleaned",
		Columns: []Column{
			intCol("ProjectID", 101, 102, 103, 104, 105, 106, 107),
			strCol("Region", "East Africa", "South Asia", "West Africa", "East Africa", "South Asia", "West Africa", "East Africa"),
			intCol("Budget", 150000, 200000, 120000, 180000, 250000, 130000, 190000),
			strCol("Status", "Active", "Completed", "Active", "Completed", "Active", "Pending", "Active"),
			strCol("StartDate", "2023-01-15", "2023-02-01", "2023-03-10", "2023-04-05", "2023-05-20", "2023-06-01", "2023-07-10"),
		},
	}
}

func beneficiaryRecords() *Dataset {
	return &Dataset{
		Name: "beneficiary_records",
		Columns: []Column{
			intCol("BeneficiaryID", 1, 2, 3, 4, 5, 6, 7, 8),
			intCol("Age", 25, 34, 28, 40, 30, 22, 45, 38),
			strCol("Gender", "Female", "Male", "Female", "Male", "Female", "Male", "Female", "Male"),
			strCol("Location", "Camp A", "Village B", "Camp A", "Village C", "Camp B", "Village B", "Camp A", "Village C"),
			strCol("AssistanceReceived", "Food", "Shelter", "Medical", "Food", "Shelter", "Food", "Medical", "Shelter"),
		},
	}
}

func aidDistribution() *Dataset {
	return &Dataset{
		Name: "aid_distribution",
		Columns: []Column{
			strCol("Country", "Kenya", "Uganda", "Kenya", "Ethiopia", "Uganda", "Kenya", "Ethiopia", "Uganda"),
			strCol("AidType", "Food", "Medical", "Shelter", "Food", "Medical", "Food", "Shelter", "Food"),
			intCol("AmountUSD", 100000, 150000, 80000, 120000, 200000, 90000, 110000, 180000),
			intCol("Year", 2022, 2022, 2023, 2022, 2023, 2023, 2023, 2022),
		},
	}
}

func beneficiaryDataDedup() *Dataset {
	// IDs 1 and 2 each appear twice: exactly two duplicate pairs for
	// the deduplication exercises.
	return &Dataset{
		Name: "beneficiary_data_dedup",
		Columns: []Column{
			intCol("BeneficiaryID", 1, 2, 3, 1, 4, 5, 2, 6),
			intCol("Age", 25, 34, 28, 25, 40, 30, 34, 55),
			strCol("Gender", "Female", "Male", "Female", "Female", "Male", "Female", "Male", "Male"),
			strCol("AssistanceType", "Food", "Shelter", "Food", "Food", "Medical", "Shelter", "Shelter", "Food"),
			strCol("Location", "Camp A", "Village B", "Camp A", "Camp A", "Village C", "Camp B", "Village B", "Camp A"),
		},
	}
}

func eventLogs() *Dataset {
	return &Dataset{
		Name: "event_logs",
		Columns: []Column{
			intCol("LogID", 1, 2, 3, 4, 5, 6, 7, 8),
			strCol("Timestamp",
				"2023-01-01 10:00:00", "2023-01-01 10:05:00", "2023-01-01 10:00:00", "2023-01-02 11:00:00",
				"2023-01-01 10:05:00", "2023-01-03 12:00:00", "2023-01-02 11:00:00", "2023-01-04 13:00:00"),
			strCol("EventType", "Login", "View Page", "Login", "Logout", "View Page", "Login", "Logout", "View Page"),
			strCol("UserID", "userA", "userB", "userA", "userC", "userB", "userA", "userC", "userD"),
		},
	}
}

func partnerOrganizations() *Dataset {
	return &Dataset{
		Name: "partner_organizations",
		Columns: []Column{
			intCol("OrgID", 1, 2, 3, 4, 5, 6, 7),
			strCol("OrgName",
				"Save the Children", "Save The Children Intl.", "Doctors Without Borders",
				"Medecins Sans Frontieres", "Save Childrn", "Doctors W/O Borders", "Save the Children"),
			strCol("ContactPerson", "Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace"),
			strCol("City", "New York", "NYC", "Paris", "Paris", "New-York", "London", "New York"),
		},
	}
}

func healthRecords() *Dataset {
	return &Dataset{
		Name: "health_records",
		Columns: []Column{
			intCol("PatientID", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
			intCol("WeightKg", 70, 85, 60, 90, 75, 80, 65, 78, 88, 92),
			intCol("HeightCm", 175, 180, 160, 185, 170, 178, 165, 172, 182, 190),
			intCol("BloodPressureSystolic", 120, 135, 110, 150, 125, 140, 115, 130, 145, 160),
			intCol("BloodPressureDiastolic", 80, 85, 70, 95, 82, 90, 75, 80, 92, 100),
		},
	}
}

func schoolData() *Dataset {
	return &Dataset{
		Name: "school_data",
		Columns: []Column{
			intCol("SchoolID", 1, 2, 3, 4, 5, 6, 7, 8),
			strCol("District", "North", "South", "East", "West", "North", "South", "East", "West"),
			intCol("Enrollment", 500, 700, 600, 800, 550, 720, 630, 850),
			intCol("FundingPerStudent", 1000, 950, 1100, 900, 1050, 980, 1120, 920),
			intCol("TestScoreAverage", 75, 80, 70, 85, 78, 82, 72, 88),
		},
	}
}

func districtPoverty() *Dataset {
	return &Dataset{
		Name: "district_poverty",
		Columns: []Column{
			strCol("District", "North", "South", "East", "West"),
			floatCol("PovertyRate", 0.15, 0.10, 0.20, 0.08),
		},
	}
}
