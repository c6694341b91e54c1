package harvest

import (
	"bytes"
	"fmt"

	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// locate returns the sequence the pipeline assembled for one
// (sample, gene) pair, or nil when there is none. A gene with no file
// is expected and silent; a file that exists but is empty gets a
// warning, since "attempted and empty" matters downstream. Files hold
// at most one record per gene by upstream contract, so only the first
// record is taken.
func locate(st Storage, sample, gene string, typ SeqType, rep Reporter) (*linear.Seq, error) {
	rel := typ.genePath(sample, gene)

	if !st.FileExists(rel) {
		return nil, nil
	}

	b, err := st.ReadBytes(rel)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s for sample %s: %v", rel, sample, err)
	}
	if len(b) == 0 {
		rep.Warnf("file %s exists, but is empty", st.Path(rel))
		return nil, nil
	}

	sc := seqio.NewScanner(fasta.NewReader(bytes.NewReader(b), linear.NewSeq("", nil, typ.alphabet())))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", rel, err)
		}
		return nil, nil
	}

	return sc.Seq().(*linear.Seq), nil
}
