package harvest

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Storage is read access to one sample's assembly output. The output
// either sits in a plain directory tree or inside a <sample>.tar.gz
// archive; relative paths are identical in both layouts.
type Storage interface {
	// FileExists reports whether the sample has a file at the
	// slash-separated relative path.
	FileExists(rel string) bool

	// ReadBytes returns the content of the file at rel.
	ReadBytes(rel string) ([]byte, error)

	// ReadLines returns the non-empty lines of the file at rel.
	ReadLines(rel string) ([]string, error)

	// Path names the file's full location for messages.
	Path(rel string) string
}

// AmbiguousStorageError marks a sample found both as a plain directory
// and as a compressed archive. The run aborts rather than silently
// picking one of the two.
type AmbiguousStorageError struct {
	Sample string
	Dir    string
}

func (e *AmbiguousStorageError) Error() string {
	return fmt.Sprintf(
		"both a compressed and an un-compressed folder exist for sample %s in directory %s, remove one",
		e.Sample, e.Dir)
}

// dirStorage reads a sample's files from an uncompressed directory
// tree rooted at the sample parent directory.
type dirStorage struct {
	root string
}

func (d dirStorage) Path(rel string) string {
	return filepath.Join(d.root, filepath.FromSlash(rel))
}

func (d dirStorage) FileExists(rel string) bool {
	info, err := os.Stat(d.Path(rel))
	return err == nil && info.Mode().IsRegular()
}

func (d dirStorage) ReadBytes(rel string) ([]byte, error) {
	return ioutil.ReadFile(d.Path(rel))
}

func (d dirStorage) ReadLines(rel string) ([]string, error) {
	b, err := d.ReadBytes(rel)
	if err != nil {
		return nil, err
	}
	return splitLines(b), nil
}

// tarStorage reads a sample's files from a .tar.gz archive. The entry
// listing is captured once when the sample is resolved; file content
// is read with a fresh pass over the archive.
type tarStorage struct {
	path    string
	entries map[string]bool
}

// newTarStorage lists the regular file entries of the archive at p.
func newTarStorage(p string) (*tarStorage, error) {
	st := &tarStorage{path: p, entries: make(map[string]bool)}

	err := st.walk(func(h *tar.Header, _ *tar.Reader) (bool, error) {
		st.entries[entryName(h.Name)] = true
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return st, nil
}

// walk runs fn over every regular file entry until fn asks to stop.
func (t *tarStorage) walk(fn func(*tar.Header, *tar.Reader) (stop bool, err error)) error {
	f, err := os.Open(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read archive %s: %v", t.path, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read archive %s: %v", t.path, err)
		}
		if h.Typeflag != tar.TypeReg {
			continue
		}

		stop, err := fn(h, tr)
		if err != nil || stop {
			return err
		}
	}
}

func (t *tarStorage) Path(rel string) string {
	return t.path + ":" + rel
}

func (t *tarStorage) FileExists(rel string) bool {
	return t.entries[rel]
}

func (t *tarStorage) ReadBytes(rel string) ([]byte, error) {
	var b []byte
	found := false

	err := t.walk(func(h *tar.Header, tr *tar.Reader) (bool, error) {
		if entryName(h.Name) != rel {
			return false, nil
		}
		found = true
		var err error
		b, err = ioutil.ReadAll(tr)
		return true, err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no entry %s in archive %s", rel, t.path)
	}

	return b, nil
}

func (t *tarStorage) ReadLines(rel string) ([]string, error) {
	b, err := t.ReadBytes(rel)
	if err != nil {
		return nil, err
	}
	return splitLines(b), nil
}

// entryName normalizes an archive entry path for comparison against
// the slash-separated relative paths used throughout.
func entryName(name string) string {
	return strings.TrimPrefix(path.Clean(name), "./")
}

// splitLines breaks file content into lines, dropping blank ones.
func splitLines(b []byte) (lines []string) {
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return
}

// resolveSamples probes the sample parent directory for each name and
// maps it to its storage. Names found nowhere are returned in missing,
// sorted; a name found both ways aborts the run.
func resolveSamples(dir string, names []string) (found []string, storages map[string]Storage, missing []string, err error) {
	storages = make(map[string]Storage)

	for _, name := range names {
		archive := filepath.Join(dir, name+".tar.gz")
		plain := filepath.Join(dir, name)

		archiveInfo, archiveErr := os.Stat(archive)
		plainInfo, plainErr := os.Stat(plain)
		hasArchive := archiveErr == nil && archiveInfo.Mode().IsRegular()
		hasPlain := plainErr == nil && plainInfo.IsDir()

		switch {
		case hasArchive && hasPlain:
			return nil, nil, nil, &AmbiguousStorageError{Sample: name, Dir: dir}
		case hasArchive:
			st, err := newTarStorage(archive)
			if err != nil {
				return nil, nil, nil, err
			}
			storages[name] = st
			found = append(found, name)
		case hasPlain:
			storages[name] = dirStorage{root: dir}
			found = append(found, name)
		default:
			missing = append(missing, name)
		}
	}

	sort.Strings(missing)
	return found, storages, missing, nil
}
