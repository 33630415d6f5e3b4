// Package catalog holds the bundled song table: an ordered list of tracks,
// each with a title and the packaged raw resource id the player loads.
//
// The table ships as an embedded yaml manifest so a build can swap tracks
// without touching the settings code:
//
//	tracks:
//	  - title: 'Hopes and Dreams'
//	    resource: hopes_and_dreams
//	    id: 2131623956
//
// The settings store publishes it to the UI as two strings, see SongsJSON
// and OrderedJSON.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var bundled []byte

type Track struct {
	Title    string `yaml:"title"`
	Resource string `yaml:"resource"`
	ID       int    `yaml:"id"`
}

type Catalog struct {
	Tracks []Track `yaml:"tracks"`
}

// Default returns the manifest compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(bundled))
}

func Load(fs afero.Fs, path string) (*Catalog, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty manifest")
		}
		return nil, errors.Wrap(err, "decode manifest")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if len(c.Tracks) == 0 {
		return errors.New("manifest has no tracks")
	}
	seen := make(map[string]bool, len(c.Tracks))
	resources := make(map[string]bool, len(c.Tracks))
	for i, t := range c.Tracks {
		if strings.TrimSpace(t.Title) == "" {
			return errors.Errorf("track %d: missing title", i)
		}
		if strings.TrimSpace(t.Resource) == "" {
			return errors.Errorf("track %q: missing resource", t.Title)
		}
		if t.ID <= 0 {
			return errors.Errorf("track %q: id must be positive", t.Title)
		}
		if seen[t.Title] {
			return errors.Errorf("track %q listed twice", t.Title)
		}
		if resources[t.Resource] {
			return errors.Errorf("resource %q used twice", t.Resource)
		}
		seen[t.Title] = true
		resources[t.Resource] = true
	}
	return nil
}

// Titles returns track titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, 0, len(c.Tracks))
	for _, t := range c.Tracks {
		out = append(out, t.Title)
	}
	return out
}

// SongsJSON encodes title -> stringified resource id.
func (c *Catalog) SongsJSON() string {
	m := make(map[string]string, len(c.Tracks))
	for _, t := range c.Tracks {
		m[t.Title] = strconv.Itoa(t.ID)
	}
	b, _ := json.Marshal(m)
	return string(b)
}

// OrderedJSON encodes the titles as a JSON array in catalog order.
func (c *Catalog) OrderedJSON() string {
	b, _ := json.Marshal(c.Titles())
	return string(b)
}

// Write emits c as a manifest.
func (c *Catalog) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encode manifest")
	}
	return enc.Close()
}
