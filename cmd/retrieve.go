package cmd

import (
	"github.com/seqtools/harvest/internal/harvest"
	"github.com/spf13/cobra"
)

var (
	targetsDNAHelp = `FASTA file with the DNA target sequences used for the assembly run.
If there are multiple targets for a gene, the id must be of the form: >Taxon-geneName`

	targetsAAHelp = `FASTA file with the amino-acid target sequences used for the assembly run.
If there are multiple targets for a gene, the id must be of the form: >Taxon-geneName`

	filterByHelp = `filter samples by a column of the stats file. Three space-separated values:
1) a column of the stats file, 2) "greater" or "smaller", 3) a threshold - either
an integer (raw number of genes) or a float (fraction of genes in the target file).
Can be passed multiple times, filters are applied together`
)

// dnaCmd collects the nucleotide exon sequences.
var dnaCmd = &cobra.Command{
	Use:                        "dna",
	Short:                      "Collect nucleotide coding sequences, one FASTA file per gene",
	Run:                        harvest.RetrieveCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Collect the nucleotide coding sequence of every gene from every sample.
One unaligned FASTA file is written per gene, with one record per sample
that assembled a sequence for it.`,
}

// aaCmd collects the translated sequences.
var aaCmd = &cobra.Command{
	Use:                        "aa",
	Short:                      "Collect amino-acid sequences, one FASTA file per gene",
	Run:                        harvest.RetrieveCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Collect the amino-acid sequence of every gene from every sample.
One unaligned FASTA file is written per gene, with one record per sample
that assembled a sequence for it.`,
	Aliases: []string{"protein"},
}

// intronCmd collects the intron-only sequences.
var intronCmd = &cobra.Command{
	Use:                        "intron",
	Short:                      "Collect intron sequences, one FASTA file per gene",
	Run:                        harvest.RetrieveCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Collect the intron sequence of every gene from every sample, as recovered
by the assembly pipeline's intron extraction stage.`,
	Aliases: []string{"introns"},
}

// supercontigCmd collects the concatenated intron+exon sequences.
var supercontigCmd = &cobra.Command{
	Use:                        "supercontig",
	Short:                      "Collect supercontig (intron + exon) sequences, one FASTA file per gene",
	Run:                        harvest.RetrieveCmd,
	SuggestionsMinimumDistance: 3,
	Long: `Collect the supercontig (concatenated intron and exon) sequence of every
gene from every sample.`,
}

// set flags
func init() {
	for _, c := range []*cobra.Command{dnaCmd, aaCmd, intronCmd, supercontigCmd} {
		c.Flags().StringP("targets-dna", "t", "", targetsDNAHelp)
		c.Flags().StringP("targets-aa", "p", "", targetsAAHelp)
		c.Flags().StringP("sample-names", "n", "", "text file with sample names, one per line")
		c.Flags().StringP("single-sample", "s", "", "a single sample name to collect sequences for")
		c.Flags().StringP("dir", "d", ".", "parent directory with the assembly pipeline output")
		c.Flags().StringP("out", "o", ".", "directory for the output FASTA files, created if missing")
		c.Flags().Bool("skip-chimeric", false, "do not collect genes flagged as putative chimeric stitched contigs")
		c.Flags().String("stats-file", "", "summary stats file, required for --filter-by")
		c.Flags().StringArray("filter-by", nil, filterByHelp)

		RootCmd.AddCommand(c)
	}
}
