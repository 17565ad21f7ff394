package datasources

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnresolve/pkg/errcode"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of a data-sources.yaml catalogue file.
type file struct {
	DataSources []Source `yaml:"data_sources"`
}

// LoadFile reads and parses a data-sources.yaml catalogue file.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loadError(path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a data-sources.yaml catalogue from raw bytes, such as an
// embedded default.
func LoadBytes(data []byte) (*Catalogue, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, loadError("<bytes>", err)
	}
	return New(f.DataSources), nil
}

func loadError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataSourcesLoadError,
		Msg:  "Cannot load data sources catalogue from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}
