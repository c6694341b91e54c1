package harvest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// statsColumns are the summary stats columns that --filter-by accepts.
var statsColumns = []string{
	"GenesMapped",
	"GenesWithContigs",
	"GenesWithSeqs",
	"GenesAt25pct",
	"GenesAt50pct",
	"GenesAt75pct",
	"GenesAt150pct",
	"ParalogWarningsLong",
	"ParalogWarningsDepth",
	"GenesWithoutSupercontigs",
	"GenesWithSupercontigs",
	"GenesWithSupercontigSkipped",
	"GenesWithChimeraWarning",
	"TotalBasesRecovered",
}

// filterCriterion is one column/operator/threshold triple passed with
// --filter-by. The raw threshold is resolved against the gene count
// when the filter is applied.
type filterCriterion struct {
	column    string
	operator  string // greater or smaller
	threshold string
}

// statsTable is the per-sample summary table read from --stats-file.
type statsTable struct {
	columns map[string]int
	rows    []statsRow
}

type statsRow struct {
	name   string
	fields []string
}

// readStatsTable parses the tab-delimited stats file. The header must
// contain a Name column keying rows by sample.
func readStatsTable(path string) (*statsTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can not find the stats file %q", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse the stats file %q: %v", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("the stats file %q has no sample rows", path)
	}

	table := &statsTable{columns: make(map[string]int)}
	for i, column := range records[0] {
		table.columns[column] = i
	}

	nameIndex, ok := table.columns["Name"]
	if !ok {
		return nil, fmt.Errorf("the stats file %q has no Name column", path)
	}

	for _, record := range records[1:] {
		if nameIndex >= len(record) {
			return nil, fmt.Errorf("the stats file %q has a row without a sample name", path)
		}
		table.rows = append(table.rows, statsRow{name: record[nameIndex], fields: record})
	}

	return table, nil
}

// resolveThreshold turns a raw threshold into an absolute gene count.
// An integer is used verbatim; anything else is parsed as a fraction
// of the total gene count and rounded down.
func resolveThreshold(raw string, totalGenes int) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}

	fraction, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("threshold %q is neither an integer nor a float", raw)
	}

	return int(math.Floor(fraction * float64(totalGenes))), nil
}

// samplesToRetain applies every filter criterion in order, narrowing
// the row set, and returns the names of the surviving samples. An
// empty result is fatal: an explicit filter that removes every sample
// leaves nothing to do.
func samplesToRetain(table *statsTable, criteria []filterCriterion, totalGenes int, rep Reporter) (map[string]bool, []string, error) {
	rows := table.rows

	for _, criterion := range criteria {
		index, ok := table.columns[criterion.column]
		if !ok {
			return nil, nil, fmt.Errorf("the stats file has no column named %s", criterion.column)
		}

		threshold, err := resolveThreshold(criterion.threshold, totalGenes)
		if err != nil {
			return nil, nil, err
		}
		rep.Infof("Threshold for %s is: %s than %d", criterion.column, criterion.operator, threshold)

		var narrowed []statsRow
		for _, row := range rows {
			if index >= len(row.fields) {
				return nil, nil, fmt.Errorf("sample %s has no value for column %s", row.name, criterion.column)
			}
			value, err := strconv.ParseFloat(row.fields[index], 64)
			if err != nil {
				return nil, nil, fmt.Errorf(
					"sample %s has a non-numeric value %q for column %s", row.name, row.fields[index], criterion.column)
			}

			var keep bool
			switch criterion.operator {
			case "greater":
				keep = value > float64(threshold)
			case "smaller":
				keep = value < float64(threshold)
			}
			if keep {
				narrowed = append(narrowed, row)
			}
		}
		rows = narrowed
	}

	if len(rows) == 0 {
		return nil, nil, errors.New(
			"the filtering options provided would remove all samples, provide different filtering options")
	}

	retained := make(map[string]bool, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		retained[row.name] = true
		names = append(names, row.name)
	}

	return retained, names, nil
}
