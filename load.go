package astpass

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sirkon/astpass/internal/gofront"
	"github.com/sirkon/astpass/internal/tree"
	"github.com/sirkon/astpass/internal/treeyaml"
)

// ErrUnknownFormat is returned for files that are neither YAML trees nor Go sources.
var ErrUnknownFormat = errors.New("unknown tree file format")

// Load reads a tree from a .yaml/.yml tree file or a .go source file.
func Load(path string) (*tree.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read tree file")
	}

	mod, err := Parse(path, data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return mod, nil
}

// Parse decodes data, picking the format after the extension of name.
func Parse(name string, data []byte) (*tree.Module, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return treeyaml.Unmarshal(data)
	case ".go":
		return gofront.New(gofront.DefaultConfig()).TranslateFile(name, data)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "file extension of %q", name)
	}
}
