package harvest

import (
	"fmt"
	"path"

	"github.com/biogo/biogo/alphabet"
)

// SeqType is one of the four kinds of per-gene sequence the assembly
// pipeline writes for a sample.
type SeqType int

const (
	// DNA is the nucleotide coding sequence, stored under FNA.
	DNA SeqType = iota
	// AA is the translated sequence, stored under FAA.
	AA
	// Intron is the intron-only sequence. Both Intron and Supercontig
	// live under the intron subdirectory and are told apart by a token
	// in the file name.
	Intron
	// Supercontig is the concatenated intron and exon sequence.
	Supercontig
)

// parseSeqType maps a retrieve subcommand name to its SeqType.
func parseSeqType(name string) (SeqType, error) {
	switch name {
	case "dna":
		return DNA, nil
	case "aa":
		return AA, nil
	case "intron":
		return Intron, nil
	case "supercontig":
		return Supercontig, nil
	}
	return 0, fmt.Errorf("unknown sequence type %q, expected dna, aa, intron or supercontig", name)
}

func (t SeqType) String() string {
	switch t {
	case DNA:
		return "dna"
	case AA:
		return "aa"
	case Intron:
		return "intron"
	case Supercontig:
		return "supercontig"
	}
	return "unknown"
}

// subdir is the per-gene storage subdirectory under sequences/.
func (t SeqType) subdir() string {
	switch t {
	case DNA:
		return "FNA"
	case AA:
		return "FAA"
	}
	return "intron"
}

// alphabet is the biogo alphabet used to parse sequences of this type.
func (t SeqType) alphabet() alphabet.Alphabet {
	if t == AA {
		return alphabet.Protein
	}
	return alphabet.DNA
}

// fileName is the name of the per-gene sequence file, which is also
// the name of the per-gene output file in multi-sample mode.
func (t SeqType) fileName(gene string) string {
	switch t {
	case DNA:
		return gene + ".FNA"
	case AA:
		return gene + ".FAA"
	case Intron:
		return gene + "_introns.fasta"
	}
	return gene + "_supercontig.fasta"
}

// sampleFileName is the name of the merged output file in
// single-sample mode.
func (t SeqType) sampleFileName(sample string) string {
	switch t {
	case Intron:
		return sample + "_introns.fasta"
	case Supercontig:
		return sample + "_supercontig.fasta"
	}
	return fmt.Sprintf("%s_%s.fasta", sample, t)
}

// genePath is the slash-separated path of a gene's sequence file
// relative to the sample parent directory. The layout is identical on
// disk and inside a sample archive.
func (t SeqType) genePath(sample, gene string) string {
	return path.Join(sample, gene, sample, "sequences", t.subdir(), t.fileName(gene))
}
