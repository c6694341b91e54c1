package harvest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/seqtools/harvest/config"
	"github.com/spf13/cobra"
)

// RetrieveCmd is the handler behind the dna, aa, intron and
// supercontig commands.
func RetrieveCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	if err := Run(flags, conf, NewStderrReporter()); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// Run reads the gene set from the target file and collects sequences
// for every sample in the list, or for the one sample named with
// --single-sample.
func Run(f *Flags, c *config.Config, rep Reporter) error {
	genes, err := readTargetGenes(f.targets, f.targetAlpha)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.out, 0755); err != nil {
		return fmt.Errorf("failed to create the output directory %q: %v", f.out, err)
	}

	if f.singleSample != "" {
		return retrieveOne(f, c, genes, rep)
	}
	return retrieveAll(f, c, genes, rep)
}

// retrieveAll collects sequences for every gene from every sample,
// writing one FASTA file per gene. Samples are visited in sample-list
// order, so record order within a gene's file follows the list.
func retrieveAll(f *Flags, c *config.Config, genes []string, rep Reporter) error {
	names, err := readSampleNames(f.sampleNames)
	if err != nil {
		return err
	}

	var retained map[string]bool
	if len(f.filters) > 0 {
		table, err := readStatsTable(f.statsFile)
		if err != nil {
			return err
		}

		var retainedNames []string
		if retained, retainedNames, err = samplesToRetain(table, f.filters, len(genes), rep); err != nil {
			return err
		}

		rep.Infof("The filtering options provided will recover sequences from %d sample(s). These are:", len(retainedNames))
		for _, name := range retainedNames {
			rep.Infof("  %s", name)
		}
	}

	samples, storages, missing, err := resolveSamples(f.dir, names)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		rep.Warnf("the sample list contains samples not found in directory %q. The missing samples are:", f.dir)
		for _, name := range missing {
			rep.Warnf("  %s", name)
		}
	}

	// The chimera marker is read once per sample; a chimera skip must
	// not depend on which genes were processed before it. Samples the
	// stats filter excluded are never touched, so a bad marker in one
	// of them cannot abort the run.
	chimera := make(map[string]chimeraInfo, len(samples))
	for _, sample := range samples {
		if retained != nil && !retained[sample] {
			continue
		}

		info, err := loadChimeraInfo(storages[sample], sample, f.skipChimeric, rep)
		if err != nil {
			return err
		}
		chimera[sample] = info

		if c.Verbose && f.skipChimeric && len(info.genes) > 0 {
			rep.Infof("Sample %s has %d putative chimeric gene(s)", sample, len(info.genes))
		}
	}

	if retained != nil {
		rep.Infof("Retrieving %d genes from %d sample(s)", len(genes), len(retained))
	} else {
		rep.Infof("Retrieving %d genes from %d sample(s)", len(genes), len(samples))
	}

	noCheck := make(map[string]bool)
	for _, gene := range genes {
		outPath := filepath.Join(f.out, f.seqType.fileName(gene))
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %q: %v", outPath, err)
		}
		w := fasta.NewWriter(out, c.Width)

		found := 0
		for _, sample := range samples {
			if retained != nil && !retained[sample] {
				continue
			}

			info := chimera[sample]
			if !info.performed {
				noCheck[sample] = true
			} else if f.skipChimeric && info.genes[gene] {
				rep.Infof("Skipping putative chimeric stitched contig sequence for %s, sample %s", gene, sample)
				continue
			}

			s, err := locate(storages[sample], sample, gene, f.seqType, rep)
			if err != nil {
				out.Close()
				return err
			}
			if s == nil {
				continue
			}

			if _, err := w.Write(s); err != nil {
				out.Close()
				return fmt.Errorf("failed to write %q: %v", outPath, err)
			}
			found++
		}

		if err := out.Close(); err != nil {
			return fmt.Errorf("failed to write %q: %v", outPath, err)
		}
		rep.Infof("Found %d sequences for gene %s", found, gene)
	}

	// Consolidated so a large sample set does not warn once per gene.
	if f.skipChimeric && len(noCheck) > 0 {
		rep.Warnf(`option "--skip-chimeric" was provided but a chimera check was not performed during assembly for the following samples:`)

		names := make([]string, 0, len(noCheck))
		for name := range noCheck {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rep.Warnf("  %s", name)
		}

		rep.Warnf("no putative chimeric sequences were skipped for these samples")
	}

	return nil
}

// retrieveOne collects all genes of a single sample into one FASTA
// file. Record ids are suffixed with the gene name, since the sample's
// own id is otherwise identical across genes in the merged output.
func retrieveOne(f *Flags, c *config.Config, genes []string, rep Reporter) error {
	sample := f.singleSample

	found, storages, _, err := resolveSamples(f.dir, []string{sample})
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("can not find a directory or archive for sample %q in %q", sample, f.dir)
	}
	st := storages[sample]

	info, err := loadChimeraInfo(st, sample, f.skipChimeric, rep)
	if err != nil {
		return err
	}
	if f.skipChimeric && !info.performed {
		rep.Warnf(`option "--skip-chimeric" was provided but a chimera check was not performed during assembly for sample %s. No putative chimeric sequences will be skipped`, sample)
	}

	rep.Infof("Retrieving %d genes from sample %s", len(genes), sample)

	var seqs []*linear.Seq
	for _, gene := range genes {
		if f.skipChimeric && info.performed && info.genes[gene] {
			rep.Infof("Skipping putative chimeric stitched contig sequence for %s, sample %s", gene, sample)
			continue
		}

		s, err := locate(st, sample, gene, f.seqType, rep)
		if err != nil {
			return err
		}

		count := 0
		if s != nil {
			s.ID += "-" + gene
			seqs = append(seqs, s)
			count = 1
		}
		rep.Infof("Found %d sequences for gene %s", count, gene)
	}

	outPath := filepath.Join(f.out, f.seqType.sampleFileName(sample))
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %v", outPath, err)
	}

	w := fasta.NewWriter(out, c.Width)
	for _, s := range seqs {
		if _, err := w.Write(s); err != nil {
			out.Close()
			return fmt.Errorf("failed to write %q: %v", outPath, err)
		}
	}

	return out.Close()
}
