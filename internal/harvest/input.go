package harvest

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/seqtools/harvest/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "dir", "out", "filter-by", etc
// that are shared by the retrieve commands.
type Flags struct {
	// the kind of sequence to collect, from the subcommand name
	seqType SeqType

	// path to the target file the assembly run was made against
	targets string

	// the alphabet of the target file (DNA or protein)
	targetAlpha alphabet.Alphabet

	// path to the file of sample names, one per line
	sampleNames string

	// a single sample name, instead of a sample-names file
	singleSample string

	// the parent directory holding the per-sample output
	dir string

	// the directory to write output FASTA files into
	out string

	// whether to skip genes flagged as putative chimeric contigs
	skipChimeric bool

	// path to the summary stats file backing --filter-by
	statsFile string

	// the parsed --filter-by criteria
	filters []filterCriterion
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// parseCmdFlags gathers the target path, sample list, filters, etc
// from a cobra cmd object. Returns Flags and a Config for Run.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}
	p := inputParser{}
	c := config.New()

	if fs.seqType, err = parseSeqType(cmd.Name()); err != nil {
		cmd.Help()
		stderr.Fatalf("%v", err)
	}

	targetsDNA, _ := cmd.Flags().GetString("targets-dna")
	targetsAA, _ := cmd.Flags().GetString("targets-aa")
	switch {
	case targetsDNA != "" && targetsAA != "":
		cmd.Help()
		stderr.Fatalln("pass only one of --targets-dna and --targets-aa")
	case targetsDNA != "":
		fs.targets, fs.targetAlpha = targetsDNA, alphabet.DNA
	case targetsAA != "":
		fs.targets, fs.targetAlpha = targetsAA, alphabet.Protein
	default:
		cmd.Help()
		stderr.Fatalln("a target file is required: pass --targets-dna or --targets-aa")
	}

	fs.sampleNames, _ = cmd.Flags().GetString("sample-names")
	fs.singleSample, _ = cmd.Flags().GetString("single-sample")
	if (fs.sampleNames == "") == (fs.singleSample == "") {
		cmd.Help()
		stderr.Fatalln("pass exactly one of --sample-names and --single-sample")
	}
	if strings.ContainsRune(fs.singleSample, '/') {
		stderr.Fatalf("a sample name must not contain forward slashes: %q", fs.singleSample)
	}

	fs.dir, _ = cmd.Flags().GetString("dir")
	fs.out, _ = cmd.Flags().GetString("out")
	fs.skipChimeric, _ = cmd.Flags().GetBool("skip-chimeric")
	fs.statsFile, _ = cmd.Flags().GetString("stats-file")

	rawFilters, _ := cmd.Flags().GetStringArray("filter-by")
	if fs.statsFile != "" && len(rawFilters) == 0 {
		cmd.Help()
		stderr.Fatalln("a stats file was provided but no filtering options were passed with --filter-by")
	}
	if len(rawFilters) > 0 && fs.statsFile == "" {
		cmd.Help()
		stderr.Fatalln("filtering options were passed but no stats file was provided with --stats-file")
	}
	if fs.filters, err = p.parseFilters(rawFilters); err != nil {
		cmd.Help()
		stderr.Fatalf("%v", err)
	}

	return fs, c
}

// parseFilters validates the --filter-by triples: an allow-listed
// column, "greater" or "smaller", and a numeric threshold.
func (p *inputParser) parseFilters(raw []string) (criteria []filterCriterion, err error) {
	for _, triple := range raw {
		fields := strings.Fields(triple)
		if len(fields) != 3 {
			return nil, fmt.Errorf("--filter-by wants three space-separated values, got %q", triple)
		}
		column, operator, threshold := fields[0], fields[1], fields[2]

		if !validStatsColumn(column) {
			return nil, fmt.Errorf("only columns from the following list are allowed: %s",
				strings.Join(statsColumns, ", "))
		}
		if operator != "greater" && operator != "smaller" {
			return nil, fmt.Errorf("only the operators \"greater\" and \"smaller\" are allowed, got %q", operator)
		}
		if _, err := strconv.ParseFloat(threshold, 64); err != nil {
			return nil, fmt.Errorf("provide only integers or floats as threshold values, got %q", threshold)
		}

		criteria = append(criteria, filterCriterion{column: column, operator: operator, threshold: threshold})
	}

	return criteria, nil
}

func validStatsColumn(column string) bool {
	for _, c := range statsColumns {
		if c == column {
			return true
		}
	}

	return false
}

// readSampleNames parses the sample list file: one name per line,
// blank lines ignored. A name containing a path separator would
// escape the sample parent directory and is fatal.
func readSampleNames(path string) ([]string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can not find a file with the name %q", path)
	}

	var names []string
	for _, line := range splitLines(b) {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if strings.ContainsRune(name, '/') {
			return nil, fmt.Errorf("a sample name must not contain forward slashes, the file %q contains %q", path, name)
		}
		names = append(names, name)
	}

	return names, nil
}
