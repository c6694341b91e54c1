package harvest

import (
	"path/filepath"
	"reflect"
	"testing"
)

func Test_resolveThreshold(t *testing.T) {
	tests := []struct {
		raw        string
		totalGenes int
		want       int
		wantErr    bool
	}{
		{"5", 10, 5, false},
		{"0.5", 10, 5, false}, // same cutoff as the integer form
		{"0.85", 10, 8, false},
		{"0.8", 100, 80, false},
		{"1.0", 10, 10, false},
		{"abc", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := resolveThreshold(tt.raw, tt.totalGenes)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveThreshold(%q, %d) error = %v, wantErr %v", tt.raw, tt.totalGenes, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveThreshold(%q, %d) = %d, want %d", tt.raw, tt.totalGenes, got, tt.want)
			}
		})
	}
}

func testStatsTable() *statsTable {
	return &statsTable{
		columns: map[string]int{"Name": 0, "GenesWithSeqs": 1, "ParalogWarningsLong": 2},
		rows: []statsRow{
			{name: "S1", fields: []string{"S1", "90", "1"}},
			{name: "S2", fields: []string{"S2", "30", "0"}},
			{name: "S3", fields: []string{"S3", "85", "12"}},
		},
	}
}

func Test_samplesToRetain(t *testing.T) {
	tests := []struct {
		name       string
		criteria   []filterCriterion
		totalGenes int
		want       []string
		wantErr    bool
	}{
		{
			"integer threshold",
			[]filterCriterion{{"GenesWithSeqs", "greater", "80"}},
			100,
			[]string{"S1", "S3"},
			false,
		},
		{
			"fraction threshold",
			[]filterCriterion{{"GenesWithSeqs", "greater", "0.8"}},
			100,
			[]string{"S1", "S3"},
			false,
		},
		{
			"criteria are a conjunction",
			[]filterCriterion{
				{"GenesWithSeqs", "greater", "80"},
				{"ParalogWarningsLong", "smaller", "10"},
			},
			100,
			[]string{"S1"},
			false,
		},
		{
			"smaller",
			[]filterCriterion{{"GenesWithSeqs", "smaller", "50"}},
			100,
			[]string{"S2"},
			false,
		},
		{
			"empty result is fatal",
			[]filterCriterion{{"GenesWithSeqs", "greater", "95"}},
			100,
			nil,
			true,
		},
		{
			"unknown column is fatal",
			[]filterCriterion{{"GenesMapped", "greater", "1"}},
			100,
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retained, names, err := samplesToRetain(testStatsTable(), tt.criteria, tt.totalGenes, &recordReporter{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("samplesToRetain error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("names = %v, want %v", names, tt.want)
			}
			for _, name := range tt.want {
				if !retained[name] {
					t.Errorf("retained[%s] = false", name)
				}
			}
		})
	}
}

func Test_readStatsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.tsv")
	writeFile(t, path, "Name\tGenesMapped\tGenesWithSeqs\nS1\t300\t290\nS2\t100\t40\n")

	table, err := readStatsTable(path)
	if err != nil {
		t.Fatalf("readStatsTable errored: %v", err)
	}

	if len(table.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.rows))
	}
	if table.rows[0].name != "S1" || table.rows[1].name != "S2" {
		t.Errorf("row names = %s, %s", table.rows[0].name, table.rows[1].name)
	}
	if table.columns["GenesWithSeqs"] != 2 {
		t.Errorf("GenesWithSeqs index = %d, want 2", table.columns["GenesWithSeqs"])
	}

	if _, err := readStatsTable(filepath.Join(dir, "missing.tsv")); err == nil {
		t.Error("readStatsTable did not error on a missing file")
	}
}
