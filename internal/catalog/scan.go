package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"gitea.knapp/jacoknapp/launcher/internal/util"
)

// RawResourceBase is the first id the packager hands out to raw resources.
// Ids are assigned in resource-name order.
const RawResourceBase = 0x7f0e0000

// Scan builds a catalog from the .mp3 files in dir. Titles come from the
// ID3 title frame, falling back to the file name.
func Scan(fs afero.Fs, dir string) (*Catalog, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", dir)
	}
	c := &Catalog{}
	for _, fi := range infos {
		if fi.IsDir() || !strings.EqualFold(filepath.Ext(fi.Name()), ".mp3") {
			continue
		}
		path := filepath.Join(dir, fi.Name())
		title, err := readTitle(fs, path)
		if err != nil {
			return nil, err
		}
		res := resourceName(fi.Name())
		if title == "" {
			title = util.TitleFromSlug(res)
		}
		c.Tracks = append(c.Tracks, Track{Title: title, Resource: res})
	}
	sort.Slice(c.Tracks, func(i, j int) bool { return c.Tracks[i].Resource < c.Tracks[j].Resource })
	for i := range c.Tracks {
		c.Tracks[i].ID = RawResourceBase + i
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", dir)
	}
	return c, nil
}

func readTitle(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	tag, err := id3v2.ParseReader(f, id3v2.Options{Parse: true, ParseFrames: []string{"Title"}})
	if err != nil {
		return "", errors.Wrapf(err, "read tags %s", path)
	}
	return strings.TrimSpace(tag.Title()), nil
}

// resourceName turns "Hopes And Dreams.mp3" into "hopes_and_dreams": raw
// resource names allow only lowercase letters, digits and underscores.
func resourceName(file string) string {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	var b strings.Builder
	under := false
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			under = false
		case !under && b.Len() > 0:
			b.WriteByte('_')
			under = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
