package batteryprovider

import (
	"fmt"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

// Args for the battery segment.
type Args struct {
	// LowBatteryThreshold switches to the low colors below this percentage
	// while discharging.
	LowBatteryThreshold float64 `json:"low_battery_threshold" validate:"gte=0,lte=100"`
}

type batteryProvider struct {
	reader Reader
}

// New creates the battery provider. A nil reader uses SystemReader.
func New(reader Reader) segment.Provider[Args] {
	if reader == nil {
		reader = SystemReader{}
	}
	return batteryProvider{reader: reader}
}

func (batteryProvider) Metadata() segment.Metadata {
	return segment.Metadata{
		Name:        "battery",
		Aliases:     []string{"battery_status"},
		Description: "State of charge and charging status",
	}
}

func (batteryProvider) DefaultArgs() Args {
	return Args{LowBatteryThreshold: 50}
}

func (p batteryProvider) Segments(args Args, state *segment.State) ([]segment.Segment, error) {
	reading, err := p.reader.Read()
	if err != nil {
		return nil, err
	}

	th := state.Theme().Battery
	seg := segment.Segment{
		FG:        th.NormalFG,
		BG:        th.NormalBG,
		Separator: segment.Thick,
	}

	switch reading.State {
	case Charging:
		seg.Text = fmt.Sprintf("%.0f%% %s", reading.Percent, th.ChargingSymbol)
		seg.Source = "Battery::Charging"
	case Full:
		seg.Text = "100% " + th.FullSymbol
		seg.Source = "Battery::Full"
	case Empty:
		seg.FG, seg.BG = th.LowFG, th.LowBG
		seg.Text = fmt.Sprintf("%.0f%% %s", reading.Percent, th.EmptySymbol)
		seg.Source = "Battery::Empty"
	default:
		if reading.Percent < args.LowBatteryThreshold {
			seg.FG, seg.BG = th.LowFG, th.LowBG
		}
		seg.Text = fmt.Sprintf("%.0f%% %s", reading.Percent, th.DischargingSymbol)
		seg.Source = "Battery::Discharging"
	}

	return []segment.Segment{seg}, nil
}
