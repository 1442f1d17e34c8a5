package prefs

import (
	"time"

	"github.com/ValentinKolb/prefsync/lib/codec"
	"github.com/ValentinKolb/prefsync/lib/common"
)

// Build creates a store backed by the file at path.
//
// The initial values are loaded with c (codec.Default() if nil). A missing,
// unreadable or corrupt file results in an empty store and is left untouched.
// Afterward every effective change rewrites the whole file synchronously,
// before SetString returns. Write failures are logged and counted in Stats,
// the store keeps working in memory.
//
// An empty path is a configuration error.
func Build(path string, c *codec.Codec) (IPreferences, error) {
	if path == "" {
		return nil, common.NewError(common.RetCInvalidConfiguration, "no preferences file given")
	}
	if c == nil {
		c = codec.Default()
	}

	p := New(c.Load(path)).(*prefsImpl)
	p.AddListener(func(key, _, _ string) {
		start := time.Now()
		err := c.Write(path, p.Snapshot())
		if err != nil {
			log.Warningf("cannot store preferences into %s after change of %s: %v", path, key, err)
		}
		p.recorder.Rewrite(start, err)
	})

	log.Infof("preferences backed by %s (%s, %s)", path, c.Serializer.Format(), c.Compression)
	return p, nil
}
