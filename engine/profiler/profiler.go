//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

// Init arms the recorder with room for capacity scope events; older events
// are overwritten once it wraps.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 18
	}
	rec.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !rec.ready.Load() {
		return func() {}
	}
	id := scopes.id(name)
	began := time.Now().UnixNano()
	rec.push(event{at: began, scope: id, open: true})
	return func() {
		rec.push(event{at: max(time.Now().UnixNano(), began), scope: id})
	}
}

// Dump writes the recorded scopes as a speedscope document to path.
func Dump(path string) error {
	evs := rec.snapshot()
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no events to dump")
	}
	return writeSpeedscope(evs, path)
}

// OpenProfilerGraph dumps into the temp dir and opens speedscope on it when
// the tool is installed.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "sprout.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	if _, err := exec.LookPath("speedscope"); err == nil {
		_ = exec.Command("speedscope", path).Start()
	}
	return path, nil
}

// ===== Event ring =====

type event struct {
	at    int64
	scope int
	open  bool
}

type ring struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

func (r *ring) init(n int) {
	r.size = uint64(n)
	r.evs = make([]event, n)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *ring) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *ring) snapshot() []event {
	n := r.next.Load()
	from := uint64(0)
	if n > r.size {
		from = n - r.size
	}
	out := make([]event, 0, n-from)
	for k := from; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var rec ring

// ===== Scope names =====

type names struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

func (n *names) id(name string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if id, ok := n.index[name]; ok {
		return id
	}
	if n.index == nil {
		n.index = map[string]int{}
	}
	id := len(n.list)
	n.index[name] = id
	n.list = append(n.list, name)
	return id
}

func (n *names) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.list...)
}

var scopes names

// ===== Speedscope =====

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []event, path string) error {
	var frames []ssFrame
	for _, n := range scopes.all() {
		frames = append(frames, ssFrame{Name: n})
	}

	base := evs[0].at
	var (
		out   = make([]ssEvent, 0, len(evs))
		open  []int
		last  int64
		endUS int64
	)
	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			open = append(open, e.scope)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.scope})
		} else {
			// The ring may have dropped the matching open.
			if len(open) == 0 || open[len(open)-1] != e.scope {
				continue
			}
			open = open[:len(open)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.scope})
		}
		last, endUS = at, max(endUS, at)
	}
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: open[i]})
	}
	if len(out) == 0 {
		return fmt.Errorf("profiler: no balanced scopes")
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "ui frames",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "sprout-profiler",
		Name:     "sprout simulator capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	if err := json.NewEncoder(f).Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
