package main

import (
	"errors"
	"slices"
	"strings"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/icons"
	"github.com/hubastard/sprout/engine/scratch"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/ui"
	"github.com/hubastard/sprout/engine/ui/keyboard"
)

type px = colors.RGB565

// demo builds one screen. Frame runs every tick with a fresh Ctx.
type demo interface {
	Frame(u *ui.Ctx[px]) error
	// Wiped tells the demo the whole canvas was cleared behind its back.
	Wiped()
}

type demoEnv struct {
	layout *keyboard.Layout
	icon   *gfx.Mask // nil uses the built-in settings icon
	width  int
}

var demos = map[string]func(demoEnv) demo{
	"counter":  newCounterDemo,
	"widgets":  newWidgetsDemo,
	"combo":    newComboDemo,
	"keyboard": newKeyboardDemo,
	"panels":   newPanelsDemo,
}

func demoNames() []string {
	var names []string
	for n := range demos {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// errs gathers widget errors of a frame. Running out of room is a layout
// choice on a small panel, not a failure.
type errs struct{ err error }

func (e *errs) add(r ui.Response) ui.Response {
	if r.Err != nil && !errors.Is(r.Err, ui.ErrNoSpaceLeft) {
		e.err = errors.Join(e.err, r.Err)
	}
	return r
}

// ===== Counter =====

type counterDemo struct {
	store *smartstate.Store
	count int
	label scratch.Text
}

func newCounterDemo(demoEnv) demo {
	return &counterDemo{store: smartstate.NewStore(4), label: scratch.NewText(32)}
}

func (d *counterDemo) Wiped() { d.store.ForceRedrawAll() }

func (d *counterDemo) Frame(u *ui.Ctx[px]) error {
	var e errs
	d.store.RestartCounter()

	e.add(u.Add(ui.Label[px]("Counter").Smartstate(d.store.Next())))
	if e.add(u.AddHorizontal(ui.IconButton[px](icons.Get(icons.Remove, 18)).Smartstate(d.store.Next()))).Clicked {
		d.count--
	}
	if e.add(u.AddHorizontal(ui.IconButton[px](icons.Get(icons.Add, 18)).Smartstate(d.store.Next()))).Clicked {
		d.count++
	}
	d.label.Reset().S("count ").I(d.count)
	e.add(u.AddAndClearColRemainder(ui.HashLabel[px](d.label.View(), d.store.Next(), nil), true))
	return e.err
}

// ===== Widgets =====

type widgetsDemo struct {
	store *smartstate.Store
	icon  *gfx.Mask

	enabled    bool
	brightness int16
	mute       bool
	wifi       bool
	presses    int
	status     scratch.Text
}

func newWidgetsDemo(env demoEnv) demo {
	d := &widgetsDemo{
		store:      smartstate.NewStore(12),
		icon:       env.icon,
		enabled:    true,
		brightness: 60,
		status:     scratch.NewText(64),
	}
	if d.icon == nil {
		d.icon = icons.Get(icons.Settings, 18)
	}
	return d
}

func (d *widgetsDemo) Wiped() { d.store.ForceRedrawAll() }

func (d *widgetsDemo) Frame(u *ui.Ctx[px]) error {
	var e errs
	d.store.RestartCounter()

	e.add(u.AddHorizontal(ui.Checkbox[px](&d.enabled).Smartstate(d.store.Next())))
	e.add(u.Add(ui.Label[px]("controls enabled").Smartstate(d.store.Next())))

	e.add(u.Add(ui.Slider[px](&d.brightness, 0, 100).
		Step(5).
		Width(180).
		Label("brightness").
		Enabled(d.enabled).
		Smartstate(d.store.Next())))

	e.add(u.AddHorizontal(ui.ToggleButton[px]("Mute", &d.mute).Enabled(d.enabled).Smartstate(d.store.Next())))
	e.add(u.AddHorizontal(ui.ToggleSwitch[px](&d.wifi).Enabled(d.enabled).Smartstate(d.store.Next())))
	e.add(u.Add(ui.Label[px]("wifi").Smartstate(d.store.Next())))

	if e.add(u.AddHorizontal(ui.IconButton[px](d.icon).Label("setup").Enabled(d.enabled).Smartstate(d.store.Next()))).Clicked {
		d.presses++
	}
	e.add(u.Add(ui.Button[px]("Locked").Enabled(false).Smartstate(d.store.Next())))

	d.status.Reset().S("bright ").I(int(d.brightness)).S(" setup ").I(d.presses)
	if d.mute {
		d.status.S(" muted")
	}
	e.add(u.AddAndClearColRemainder(ui.HashLabel[px](d.status.View(), d.store.Next(), nil).AutoTruncate(300), true))
	return e.err
}

// ===== Combo =====

type comboDemo struct {
	store *smartstate.Store
	popup ui.PopupState
	buf   []px

	unit   int
	rate   string
	status scratch.Text
}

var (
	comboUnits = []string{"celsius", "fahrenheit", "kelvin"}
	comboRates = []string{"1 Hz", "10 Hz", "50 Hz", "100 Hz"}
)

func newComboDemo(env demoEnv) demo {
	return &comboDemo{
		store:  smartstate.NewStore(8),
		buf:    make([]px, env.width*120),
		rate:   comboRates[1],
		status: scratch.NewText(48),
	}
}

func (d *comboDemo) Wiped() { d.store.ForceRedrawAll() }

func (d *comboDemo) Frame(u *ui.Ctx[px]) error {
	var e errs
	d.store.RestartCounter()
	u.BeginPopup(&d.popup, d.buf)

	e.add(u.AddHorizontal(ui.Label[px]("unit").Smartstate(d.store.Next())))
	e.add(u.Add(ui.ComboBox[px](ui.SelectIndex(&d.unit), comboUnits).Width(120).Smartstate(d.store.Next())))
	e.add(u.AddHorizontal(ui.Label[px]("rate").Smartstate(d.store.Next())))
	e.add(u.Add(ui.ComboBox[px](ui.SelectText(&d.rate), comboRates).Smartstate(d.store.Next())))

	d.status.Reset().S(comboUnits[d.unit]).S(" @ ").S(d.rate)
	e.add(u.AddAndClearColRemainder(ui.HashLabel[px](d.status.View(), d.store.Next(), nil), true))

	// A closed popup leaves a hole; BeginPopup wiped the screen, so
	// everything paints again next frame.
	u.EndPopup(d.store.ForceRedrawAll)
	return e.err
}

// ===== Keyboard =====

type keyboardDemo struct {
	store  *smartstate.Store
	kb     *smartstate.Store
	layout *keyboard.Layout
	st     *keyboard.State
}

func newKeyboardDemo(env demoEnv) demo {
	return &keyboardDemo{
		store:  smartstate.NewStore(4),
		kb:     smartstate.NewStore(64),
		layout: env.layout,
		st:     keyboard.NewState(40),
	}
}

func (d *keyboardDemo) Wiped() {
	d.store.ForceRedrawAll()
	d.kb.ForceRedrawAll()
}

func (d *keyboardDemo) Frame(u *ui.Ctx[px]) error {
	var e errs
	d.store.RestartCounter()
	d.kb.RestartCounter()

	shown := d.st.Text.View()
	if d.st.Text.IsEmpty() {
		shown = "_"
	}
	e.add(u.AddAndClearColRemainder(ui.HashLabel[px](shown, d.store.Next(), nil).AutoTruncate(300), true))
	if e.add(u.AddHorizontal(ui.Button[px]("type").Enabled(!d.st.Open).Smartstate(d.store.Next()))).Clicked {
		d.st.Open = true
	}
	e.add(u.Add(ui.Label[px](strings.ToUpper(d.layout.Name)).Smartstate(d.store.Next())))

	// The keyboard clears everything below the cursor when it opens or
	// closes.
	e.add(keyboard.Draw(u, d.layout, d.kb, true, true, d.st))
	return e.err
}

// ===== Panels =====

type panelsDemo struct {
	store  *smartstate.Store
	volume int16
	page   int
	pages  []string
}

func newPanelsDemo(demoEnv) demo {
	return &panelsDemo{
		store: smartstate.NewStore(8),
		pages: []string{"overview", "network", "storage"},
	}
}

func (d *panelsDemo) Wiped() { d.store.ForceRedrawAll() }

func (d *panelsDemo) Frame(u *ui.Ctx[px]) error {
	var e errs
	d.store.RestartCounter()

	err := u.RightPanelUI(90, true, func(p *ui.Ctx[px]) error {
		for i, name := range d.pages {
			if e.add(p.Add(ui.Button[px](name).Width(80).Enabled(i != d.page).Smartstate(d.store.Next()))).Clicked {
				d.page = i
				d.store.ForceRedrawAll()
			}
		}
		return nil
	})
	if err != nil {
		e.err = errors.Join(e.err, err)
	}

	e.add(u.AddAndClearColRemainder(ui.Label[px](d.pages[d.page]).Smartstate(d.store.Next()), true))
	e.add(u.Add(ui.Slider[px](&d.volume, -20, 20).Width(120).Label("gain").Smartstate(d.store.Next())))

	err = u.CentralCenteredPanelUI(120, 40, func(p *ui.Ctx[px]) error {
		e.add(p.AddCentered(ui.Icon[px](icons.Get(icons.Home, 18)).Smartstate(d.store.Next())))
		return nil
	})
	if err != nil {
		e.err = errors.Join(e.err, err)
	}
	return e.err
}
