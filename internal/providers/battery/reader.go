package batteryprovider

import (
	"errors"
	"fmt"

	"github.com/distatus/battery"
)

// State is the charging state of a battery.
type State int

const (
	Unknown State = iota
	Charging
	Discharging
	Full
	Empty
)

func (s State) String() string {
	switch s {
	case Charging:
		return "Charging"
	case Discharging:
		return "Discharging"
	case Full:
		return "Full"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Reading is one battery sample. Percent is the state of charge in 0-100.
type Reading struct {
	State   State
	Percent float64
}

// Reader samples the first battery of the machine.
type Reader interface {
	Read() (Reading, error)
}

// ErrNoBattery is returned when the machine reports no battery.
var ErrNoBattery = errors.New("no battery found")

// SystemReader reads batteries through the operating system.
type SystemReader struct{}

// Read returns the first battery the system reports.
func (SystemReader) Read() (Reading, error) {
	batteries, err := battery.GetAll()
	if len(batteries) == 0 || batteries[0] == nil {
		if err != nil {
			return Reading{}, fmt.Errorf("read battery: %w", err)
		}
		return Reading{}, ErrNoBattery
	}

	b := batteries[0]
	if b.Full <= 0 {
		return Reading{}, fmt.Errorf("battery reports no full capacity")
	}

	return Reading{
		State:   convertState(b.State.Raw),
		Percent: b.Current / b.Full * 100,
	}, nil
}

func convertState(raw battery.AgnosticState) State {
	switch raw {
	case battery.Charging:
		return Charging
	case battery.Discharging:
		return Discharging
	case battery.Full:
		return Full
	case battery.Empty:
		return Empty
	default:
		return Unknown
	}
}
