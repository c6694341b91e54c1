package harvest

import (
	"fmt"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// readTargetGenes extracts the de-duplicated gene set from the target
// file used for the assembly run. Record ids follow <taxon>-<gene>, so
// the gene name is the suffix after the last dash. Order is the order
// of first appearance.
func readTargetGenes(path string, alpha alphabet.Alphabet) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can not find the target file %q", path)
	}
	defer f.Close()

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alpha)))

	seen := make(map[string]bool)
	var genes []string
	for sc.Next() {
		id := sc.Seq().Name()
		gene := id[strings.LastIndex(id, "-")+1:]
		if !seen[gene] {
			seen[gene] = true
			genes = append(genes, gene)
		}
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to parse the target file %q: %v", path, err)
	}

	if len(genes) == 0 {
		return nil, fmt.Errorf("no sequences found in the target file %q", path)
	}

	return genes, nil
}
