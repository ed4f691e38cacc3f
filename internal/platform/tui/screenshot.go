package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/vovakirdan/tui-archipelago/internal/core"
)

// Screenshotter writes plain-text captures of the screen.
type Screenshotter struct {
	fs  billy.Filesystem
	now func() time.Time
}

// NewScreenshotter writes captures into fs.
func NewScreenshotter(fs billy.Filesystem) *Screenshotter {
	return &Screenshotter{fs: fs, now: time.Now}
}

// DirScreenshotter writes captures under a directory on disk.
func DirScreenshotter(dir string) *Screenshotter {
	return NewScreenshotter(osfs.New(dir))
}

// Save writes the screen followed by the HUD line and returns the path.
func (s *Screenshotter) Save(seed string, scr *core.Screen, hud string) (string, error) {
	name := s.freeName(seed)

	f, err := s.fs.Create(name)
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot create %s: %w", name, err)
	}
	_, err = io.WriteString(f, scr.String()+"\n"+hud+"\n")
	err = multierr.Append(err, f.Close())
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", name, err)
	}
	return s.fs.Join(s.fs.Root(), name), nil
}

// freeName picks a capture name that no earlier capture uses. Captures in
// the same millisecond get a counter suffix.
func (s *Screenshotter) freeName(seed string) string {
	now := s.now()
	base := fmt.Sprintf("%s_%s_%03d", fileSafe(seed), now.Format("20060102_150405"), now.Nanosecond()/int(time.Millisecond))

	name := base + ".txt"
	for n := 2; ; n++ {
		if _, err := s.fs.Stat(name); err != nil {
			return name
		}
		name = fmt.Sprintf("%s_%d.txt", base, n)
	}
}

// fileSafe reduces a seed to characters safe in a file name.
func fileSafe(seed string) string {
	var b strings.Builder
	for _, r := range seed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
		if b.Len() >= 32 {
			break
		}
	}
	if b.Len() == 0 {
		return "seed"
	}
	return b.String()
}
