package batteryprovider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/promptr/internal/segment"
	"github.com/alexisbeaulieu97/promptr/internal/segment/segmenttest"
	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

type fakeReader struct {
	reading Reading
	err     error
}

func (f fakeReader) Read() (Reading, error) {
	return f.reading, f.err
}

func TestBattery(t *testing.T) {
	t.Parallel()

	th := theme.DefaultBattery()

	tests := []struct {
		name    string
		reading Reading
		args    string
		text    string
		low     bool
	}{
		{name: "charging", reading: Reading{State: Charging, Percent: 42.4}, text: "42% " + th.ChargingSymbol},
		{name: "discharging high", reading: Reading{State: Discharging, Percent: 80}, text: "80% " + th.DischargingSymbol},
		{name: "discharging low", reading: Reading{State: Discharging, Percent: 20}, text: "20% " + th.DischargingSymbol, low: true},
		{name: "unknown treated as discharging", reading: Reading{State: Unknown, Percent: 10}, text: "10% " + th.DischargingSymbol, low: true},
		{name: "custom threshold", reading: Reading{State: Discharging, Percent: 20}, args: `{"low_battery_threshold": 10}`, text: "20% " + th.DischargingSymbol},
		{name: "full", reading: Reading{State: Full, Percent: 99.6}, text: "100% " + th.FullSymbol},
		{name: "empty", reading: Reading{State: Empty, Percent: 0}, text: "0% " + th.EmptySymbol, low: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := New(fakeReader{reading: tc.reading})
			segments := segmenttest.Run(t, p, tc.args, segmenttest.New(nil).State())
			require.Len(t, segments, 1)
			require.Equal(t, tc.text, segments[0].Text)
			require.Equal(t, segment.Thick, segments[0].Separator)
			if tc.low {
				require.Equal(t, th.LowBG, segments[0].BG)
			} else {
				require.Equal(t, th.NormalBG, segments[0].BG)
			}
		})
	}
}

func TestBatteryReaderError(t *testing.T) {
	t.Parallel()

	err := segmenttest.RunErr(t, New(fakeReader{err: ErrNoBattery}), "", segmenttest.New(nil).State())
	require.True(t, errors.Is(err, ErrNoBattery))
}

func TestBatteryThresholdValidation(t *testing.T) {
	t.Parallel()

	err := segmenttest.RunErr(t, New(fakeReader{}), `{"low_battery_threshold": 150}`, segmenttest.New(nil).State())

	var decodeErr *segment.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Charging", Charging.String())
	require.Equal(t, "Unknown", State(42).String())
}
