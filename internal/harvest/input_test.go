package harvest

import (
	"path/filepath"
	"reflect"
	"testing"
)

func Test_parseFilters(t *testing.T) {
	p := inputParser{}

	tests := []struct {
		name    string
		raw     []string
		want    []filterCriterion
		wantErr bool
	}{
		{
			"valid",
			[]string{"GenesWithSeqs greater 0.8", "ParalogWarningsLong smaller 5"},
			[]filterCriterion{
				{"GenesWithSeqs", "greater", "0.8"},
				{"ParalogWarningsLong", "smaller", "5"},
			},
			false,
		},
		{"none", nil, nil, false},
		{"unknown column", []string{"GenesWithStuff greater 5"}, nil, true},
		{"unknown operator", []string{"GenesWithSeqs above 5"}, nil, true},
		{"bad threshold", []string{"GenesWithSeqs greater many"}, nil, true},
		{"wrong arity", []string{"GenesWithSeqs greater"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.parseFilters(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFilters(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFilters(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func Test_readSampleNames(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "namelist.txt")
	writeFile(t, path, "S1\n\nS2\n  \nS3\n")

	names, err := readSampleNames(path)
	if err != nil {
		t.Fatalf("readSampleNames errored: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"S1", "S2", "S3"}) {
		t.Errorf("names = %v, want [S1 S2 S3]", names)
	}

	bad := filepath.Join(dir, "bad.txt")
	writeFile(t, bad, "S1\nnested/sample\n")
	if _, err := readSampleNames(bad); err == nil {
		t.Error("readSampleNames did not error on a name with a path separator")
	}

	if _, err := readSampleNames(filepath.Join(dir, "absent.txt")); err == nil {
		t.Error("readSampleNames did not error on a missing file")
	}
}
