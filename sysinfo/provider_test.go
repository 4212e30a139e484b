package sysinfo

import (
	"errors"
	"testing"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFromCountsCacheAsFree(t *testing.T) {
	vm := &mem.VirtualMemoryStat{
		Total:     8 << 30,
		Free:      1 << 30,
		Available: 6 << 30,
	}

	m := memoryFrom(vm)
	assert.Equal(t, Memory{Total: 8 << 30, Free: 6 << 30}, m)

	f := Formatter{Palette: PlainPalette}
	assert.Equal(t, f.Format("memory", "2.0 GiB / 8.0 GiB"), f.FormatMemory(m))
}

func TestBatteryFrom(t *testing.T) {
	errRate := errors.New("charge rate unreadable")
	errFull := errors.New("energy_full unreadable")
	errFatal := errors.New("power_supply not mounted")

	discharging := &battery.Battery{
		State:      battery.State{Raw: battery.Discharging},
		Current:    30000,
		Full:       60000,
		ChargeRate: 15000,
	}
	charging := &battery.Battery{
		State:      battery.State{Raw: battery.Charging},
		Current:    45000,
		Full:       60000,
		ChargeRate: 15000,
	}

	tests := []struct {
		name    string
		bats    []*battery.Battery
		err     error
		want    Battery
		wantErr error
	}{
		{
			name: "discharging",
			bats: []*battery.Battery{discharging},
			want: Battery{Capacity: 0.5, Remaining: 2 * time.Hour},
		},
		{
			name: "charging has no remaining time",
			bats: []*battery.Battery{charging},
			want: Battery{Capacity: 0.75},
		},
		{
			name: "partial error with charge levels present",
			bats: []*battery.Battery{{Current: 20000, Full: 40000}},
			err:  battery.Errors{battery.ErrPartial{ChargeRate: errRate}},
			want: Battery{Capacity: 0.5},
		},
		{
			name:    "partial error with full charge missing",
			bats:    []*battery.Battery{{Current: 20000}},
			err:     battery.Errors{battery.ErrPartial{Full: errFull}},
			wantErr: errFull,
		},
		{
			name:    "no batteries",
			wantErr: ErrNoBattery,
		},
		{
			name:    "zero full charge",
			bats:    []*battery.Battery{{Current: 0, Full: 0}},
			wantErr: ErrNoBattery,
		},
		{
			name:    "fatal error",
			err:     errFatal,
			wantErr: errFatal,
		},
		{
			name:    "fatal error with battery listed",
			bats:    []*battery.Battery{discharging},
			err:     errFatal,
			wantErr: errFatal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := batteryFrom(tc.bats, tc.err)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, errFull) {
					var partial battery.ErrPartial
					require.ErrorAs(t, err, &partial)
					assert.Equal(t, errFull, partial.Full)
					return
				}
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
