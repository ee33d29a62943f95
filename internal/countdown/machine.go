package countdown

type EventKind uint

const (
	EventStart EventKind = iota
	EventPause
	EventResume
	EventReset
	EventTick
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventReset:
		return "reset"
	case EventTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event is a single input to the state machine. Hours, Minutes and
// Seconds are only read for EventStart.
type Event struct {
	Kind    EventKind
	Hours   string
	Minutes string
	Seconds string
}

func StartEvent(hours, minutes, seconds string) Event {
	return Event{Kind: EventStart, Hours: hours, Minutes: minutes, Seconds: seconds}
}

// Transition describes the side effects the owner of a Machine must carry out.
type Transition struct {
	Changed     bool // state differs, publish a snapshot
	Started     bool // a new countdown session began
	StartTicker bool
	StopTicker  bool
	Expired     bool // completion side effects are due
}

// Machine is the pure timer state machine. It is not safe for concurrent use.
type Machine struct {
	state State
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Phase() Phase { return m.state.Phase() }

// Apply runs ev through the transition function. Events that are not valid
// in the current phase are no-ops and return a zero Transition.
func (m *Machine) Apply(ev Event) (Transition, error) {
	switch ev.Kind {
	case EventStart:
		return m.start(ev)
	case EventPause:
		if !m.state.Running || m.state.Paused {
			return Transition{}, nil
		}
		m.state.Paused = true
		return Transition{Changed: true}, nil
	case EventResume:
		if !m.state.Running || !m.state.Paused {
			return Transition{}, nil
		}
		m.state.Paused = false
		return Transition{Changed: true, StartTicker: true}, nil
	case EventReset:
		m.state = State{}
		return Transition{Changed: true, StopTicker: true}, nil
	case EventTick:
		return m.tick(), nil
	default:
		return Transition{}, nil
	}
}

func (m *Machine) start(ev Event) (Transition, error) {
	if m.state.Running {
		return Transition{}, nil
	}

	total, err := Parse(ev.Hours, ev.Minutes, ev.Seconds)
	if err != nil {
		return Transition{}, err
	}

	if total == 0 {
		m.state = State{expired: true}
		return Transition{Changed: true, Started: true, Expired: true}, nil
	}

	m.state = State{
		Total:     total,
		Remaining: total,
		Running:   true,
	}
	return Transition{Changed: true, Started: true, StartTicker: true}, nil
}

func (m *Machine) tick() Transition {
	if !m.state.Running || m.state.Paused {
		return Transition{}
	}

	m.state.Remaining--
	if m.state.Remaining > 0 {
		return Transition{Changed: true}
	}

	m.state.Remaining = 0
	m.state.Running = false
	m.state.expired = true
	return Transition{Changed: true, StopTicker: true, Expired: true}
}
