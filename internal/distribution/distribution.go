package distribution

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// Directory serves distribution files from a directory tree. File names are
// resolved relative to the root; the provider never reaches outside it.
type Directory struct {
	root string
	fsys fs.FS
}

var _ nasr.Distribution = (*Directory)(nil)

// NewDirectory returns a Directory rooted at path.
func NewDirectory(path string) *Directory {
	if path == "" {
		panic("distribution: NewDirectory requires a path")
	}
	return &Directory{root: path, fsys: os.DirFS(path)}
}

// NewDirectoryFS returns a Directory over an arbitrary fs.FS. The root is
// only used in error messages.
func NewDirectoryFS(root string, fsys fs.FS) *Directory {
	if fsys == nil {
		panic("distribution: NewDirectoryFS requires a filesystem")
	}
	return &Directory{root: root, fsys: fsys}
}

// Root returns the directory the distribution was opened from.
func (d *Directory) Root() string { return d.root }

func (d *Directory) Open(name string) (io.ReadCloser, error) {
	f, err := d.fsys.Open(name)
	if err != nil {
		return nil, d.wrap(name, err)
	}
	return f, nil
}

func (d *Directory) Size(name string) (int64, error) {
	info, err := fs.Stat(d.fsys, name)
	if err != nil {
		return 0, d.wrap(name, err)
	}
	return info.Size(), nil
}

func (d *Directory) wrap(name string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("distribution %s has no file %q: %w", d.root, name, nasr.ErrFileMissing)
	}
	return fmt.Errorf("distribution %s: open %q: %w", d.root, name, err)
}

// Memory is an in-memory distribution keyed by file name.
type Memory struct {
	files map[string]string
}

var _ nasr.Distribution = (*Memory)(nil)

// NewMemory returns a Memory distribution serving the given files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string]string, len(files))}
	for name, content := range files {
		m.files[name] = content
	}
	return m
}

// Put adds or replaces a file.
func (m *Memory) Put(name, content string) {
	m.files[name] = content
}

func (m *Memory) Open(name string) (io.ReadCloser, error) {
	content, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("in-memory distribution has no file %q: %w", name, nasr.ErrFileMissing)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func (m *Memory) Size(name string) (int64, error) {
	content, ok := m.files[name]
	if !ok {
		return 0, fmt.Errorf("in-memory distribution has no file %q: %w", name, nasr.ErrFileMissing)
	}
	return int64(len(content)), nil
}
