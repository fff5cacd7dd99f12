// Package app contains the main application model and TEA implementation.
//
// The bubbletea Update loop is the only goroutine that touches the light, the
// scheduler and the timer. A frame message every ui.frame_ms runs due timer
// callbacks, advances the light and the card animation, and schedules the
// next frame.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/pomolight/internal/clock"
	"github.com/riordanpawley/pomolight/internal/config"
	"github.com/riordanpawley/pomolight/internal/domain"
	"github.com/riordanpawley/pomolight/internal/events"
	"github.com/riordanpawley/pomolight/internal/hardware"
	"github.com/riordanpawley/pomolight/internal/light"
	"github.com/riordanpawley/pomolight/internal/logging"
	"github.com/riordanpawley/pomolight/internal/pomodoro"
	"github.com/riordanpawley/pomolight/internal/sched"
	"github.com/riordanpawley/pomolight/internal/types"
	"github.com/riordanpawley/pomolight/internal/ui/card"
	"github.com/riordanpawley/pomolight/internal/ui/styles"
	"github.com/riordanpawley/pomolight/internal/ui/toast"
)

// maxToasts caps the notification stack
const maxToasts = 3

// frameMsg drives one iteration of the cooperative loop
type frameMsg time.Time

// eventMsg carries a bus event into the Update loop
type eventMsg struct {
	ev events.Event
}

// Model is the main application state
type Model struct {
	cfg    *config.Config
	clock  clock.Clock
	driver hardware.Driver
	bus    *events.Bus
	logger *slog.Logger
	now    func() time.Time

	light *light.Controller
	sched *sched.Scheduler
	timer *pomodoro.Timer
	card  *card.Card

	styles *styles.Styles
	toasts []types.Toast

	showHelp bool
	frame    time.Duration
	width    int
	height   int
}

// Option configures the Model
type Option func(*Model)

// WithClock replaces the system clock
func WithClock(clk clock.Clock) Option {
	return func(m *Model) { m.clock = clk }
}

// WithDriver replaces the driver selected by light.driver
func WithDriver(d hardware.Driver) Option {
	return func(m *Model) { m.driver = d }
}

// WithEvents publishes light and timer events to bus
func WithEvents(bus *events.Bus) Option {
	return func(m *Model) { m.bus = bus }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNow replaces the wall clock used to expire notifications
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewDriver returns the pixel driver named by the config
func NewDriver(name string) (hardware.Driver, error) {
	switch name {
	case config.DriverTerminal:
		return hardware.NewTerminalDriver(), nil
	case config.DriverMemory:
		return hardware.NewMemoryDriver(1), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDriver, name)
	}
}

// New wires the light, scheduler, timer and card from cfg
func New(cfg *config.Config, opts ...Option) (Model, error) {
	m := Model{
		cfg:    cfg,
		logger: slog.Default(),
		now:    time.Now,
		frame:  time.Duration(cfg.UI.FrameMs) * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.clock == nil {
		m.clock = clock.NewSystem()
	}
	if m.driver == nil {
		d, err := NewDriver(cfg.Light.Driver)
		if err != nil {
			return Model{}, err
		}
		m.driver = d
	}
	if m.frame <= 0 {
		m.frame = time.Duration(light.UpdateIntervalMs) * time.Millisecond
	}

	var pub events.Publisher
	if m.bus != nil {
		pub = m.bus
	}

	m.light = light.New(m.driver, m.clock,
		light.WithLogger(logging.Module(m.logger, "light")),
		light.WithEvents(pub),
		light.WithBrightness(uint8(cfg.Light.Brightness)),
	)
	m.light.Begin()

	m.styles = styles.New(styles.WithTints(cfg.UI.ThemeWork, cfg.UI.ThemeBreak))
	m.card = card.New(m.styles, m.clock)
	m.sched = sched.New(m.clock, logging.Module(m.logger, "sched"))
	m.timer = pomodoro.New(m.light, m.sched, m.card,
		pomodoro.WithLogger(logging.Module(m.logger, "pomodoro")),
		pomodoro.WithEvents(pub),
		pomodoro.WithAutoContinue(cfg.Timer.AutoContinue),
	)

	m.logger.Info("pomolight ready",
		"driver", cfg.Light.Driver,
		"brightness", cfg.Light.Brightness,
		"frame", m.frame)
	return m, nil
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

// Update handles messages and returns the updated model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.card.SetWidth(msg.Width)
		return m, nil

	case frameMsg:
		m.step()
		return m, m.nextFrame()

	case eventMsg:
		if t, ok := toast.ForEvent(msg.ev, m.now()); ok {
			m.toasts = append(m.toasts, t)
			m.toasts = types.Live(m.toasts, m.now(), maxToasts)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// step runs one iteration of the cooperative loop
func (m *Model) step() {
	now := m.clock.Millis()
	m.sched.Run(now)
	m.light.Tick(now)

	switch d := m.driver.(type) {
	case *hardware.TerminalDriver:
		m.card.SetPixel(d.Shown().Output())
	case *hardware.MemoryDriver:
		if f, ok := d.Last(); ok {
			m.card.SetPixel(f.Output())
		}
	}
	m.card.Advance(now)

	if len(m.toasts) > 0 {
		m.toasts = types.Live(m.toasts, m.now(), maxToasts)
	}
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Timer exposes the session timer
func (m Model) Timer() *pomodoro.Timer { return m.timer }

// Light exposes the status light
func (m Model) Light() *light.Controller { return m.light }
