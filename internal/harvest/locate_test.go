package harvest

import (
	"path/filepath"
	"strings"
	"testing"
)

func Test_locate(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "S1", "gene1", "S1", "sequences", "FNA", "gene1.FNA"),
		">S1\nATGCATGCATGC\n")
	writeFile(t, filepath.Join(dir, "S1", "gene2", "S1", "sequences", "FNA", "gene2.FNA"), "")
	writeFile(t, filepath.Join(dir, "S1", "gene4", "S1", "sequences", "FNA", "gene4.FNA"),
		">S1 first\nATGC\n>S1 second\nGGGG\n")

	st := dirStorage{root: dir}

	t.Run("present", func(t *testing.T) {
		rep := &recordReporter{}
		s, err := locate(st, "S1", "gene1", DNA, rep)
		if err != nil {
			t.Fatalf("locate errored: %v", err)
		}
		if s == nil {
			t.Fatal("locate returned no sequence")
		}
		if s.ID != "S1" {
			t.Errorf("ID = %q, want S1", s.ID)
		}
		if s.Len() != 12 {
			t.Errorf("Len = %d, want 12", s.Len())
		}
		if len(rep.warnings) != 0 {
			t.Errorf("unexpected warnings: %v", rep.warnings)
		}
	})

	t.Run("empty file warns", func(t *testing.T) {
		rep := &recordReporter{}
		s, err := locate(st, "S1", "gene2", DNA, rep)
		if err != nil {
			t.Fatalf("locate errored: %v", err)
		}
		if s != nil {
			t.Errorf("locate = %v, want nil", s)
		}
		if len(rep.warnings) != 1 || !strings.Contains(rep.warnings[0], "exists, but is empty") {
			t.Errorf("warnings = %v, want an empty-file warning", rep.warnings)
		}

		// the warning names the full location, not the sample-relative path
		full := filepath.Join(dir, "S1", "gene2", "S1", "sequences", "FNA", "gene2.FNA")
		if len(rep.warnings) == 1 && !strings.Contains(rep.warnings[0], full) {
			t.Errorf("warning = %q, want it to name %q", rep.warnings[0], full)
		}
	})

	t.Run("absent file is silent", func(t *testing.T) {
		rep := &recordReporter{}
		s, err := locate(st, "S1", "gene3", DNA, rep)
		if err != nil {
			t.Fatalf("locate errored: %v", err)
		}
		if s != nil {
			t.Errorf("locate = %v, want nil", s)
		}
		if len(rep.warnings) != 0 {
			t.Errorf("warnings = %v, want none", rep.warnings)
		}
	})

	t.Run("only the first record is taken", func(t *testing.T) {
		s, err := locate(st, "S1", "gene4", DNA, &recordReporter{})
		if err != nil {
			t.Fatalf("locate errored: %v", err)
		}
		if s == nil {
			t.Fatal("locate returned no sequence")
		}
		if s.Desc != "first" {
			t.Errorf("Desc = %q, want the first record", s.Desc)
		}
	})
}
