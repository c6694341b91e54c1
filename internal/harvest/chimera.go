package harvest

import (
	"fmt"
	"strings"
)

// chimeraInfo records whether the chimera check ran for a sample
// during assembly and, when it did, which genes it flagged as derived
// from a putative chimeric stitched contig.
type chimeraInfo struct {
	performed bool
	genes     map[string]bool
}

func chimeraMarkerPath(sample string) string {
	return sample + "/" + sample + "_chimera_check_performed.txt"
}

func chimeraSummaryPath(sample string) string {
	return sample + "/" + sample + "_genes_derived_from_putative_chimeric_stitched_contig.csv"
}

// loadChimeraInfo reads a sample's chimera check marker and, when the
// check ran and chimeric genes are to be skipped, the flagged gene set.
// A marker with content other than "True" or "False" means the
// upstream pipeline violated its contract and is fatal.
func loadChimeraInfo(st Storage, sample string, skipChimeric bool, rep Reporter) (chimeraInfo, error) {
	b, err := st.ReadBytes(chimeraMarkerPath(sample))
	if err != nil {
		return chimeraInfo{}, fmt.Errorf("failed to read the chimera check marker for sample %s: %v", sample, err)
	}

	switch marker := strings.TrimSpace(string(b)); marker {
	case "True":
	case "False":
		return chimeraInfo{}, nil
	default:
		return chimeraInfo{}, fmt.Errorf(
			"chimera check marker for sample %s contains %q, expected \"True\" or \"False\"", sample, marker)
	}

	info := chimeraInfo{performed: true}
	if !skipChimeric {
		return info, nil
	}

	summary := chimeraSummaryPath(sample)
	if !st.FileExists(summary) {
		// A positive marker without a summary file usually means no
		// gene sequences were produced for the sample at all.
		rep.Warnf("no chimeric stitched contig summary file found for sample %s. "+
			"This usually occurs when no gene sequences were produced for this sample", sample)
		return info, nil
	}

	lines, err := st.ReadLines(summary)
	if err != nil {
		return chimeraInfo{}, fmt.Errorf("failed to read the chimeric gene summary for sample %s: %v", sample, err)
	}

	info.genes = make(map[string]bool)
	for _, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) > 1 {
			info.genes[fields[1]] = true
		}
	}

	return info, nil
}
