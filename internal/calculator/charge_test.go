package calculator

import "testing"

func TestChargeTime(t *testing.T) {
	tests := []struct {
		name           string
		device         string
		currentPercent int
		chargerWatts   int
		wantErr        bool
		wantHours      int
		wantMinutes    int
		wantEffective  int
	}{
		{
			name:           "iphone15 half full on 20W",
			device:         "iphone15",
			currentPercent: 50,
			chargerWatts:   20,
			wantHours:      0,
			wantMinutes:    6,
			wantEffective:  16,
		},
		{
			name:           "unknown device falls back to 4000mAh",
			device:         "pixel9",
			currentPercent: 0,
			chargerWatts:   20,
			wantHours:      0,
			wantMinutes:    15,
			wantEffective:  16,
		},
		{
			name:           "already full",
			device:         "samsung-s24",
			currentPercent: 100,
			chargerWatts:   65,
			wantHours:      0,
			wantMinutes:    0,
			wantEffective:  52,
		},
		{
			name:    "no device selected",
			device:  "",
			wantErr: true,
		},
		{
			name:           "percent above 100",
			device:         "iphone14",
			currentPercent: 120,
			chargerWatts:   20,
			wantErr:        true,
		},
		{
			name:           "negative percent",
			device:         "iphone14",
			currentPercent: -1,
			chargerWatts:   20,
			wantErr:        true,
		},
		{
			name:           "zero wattage",
			device:         "iphone14",
			currentPercent: 50,
			chargerWatts:   0,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChargeTime(tt.device, tt.currentPercent, tt.chargerWatts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ChargeTime failed: %v", err)
			}
			if got.Hours != tt.wantHours || got.Minutes != tt.wantMinutes {
				t.Errorf("estimate = %dh %dm, want %dh %dm",
					got.Hours, got.Minutes, tt.wantHours, tt.wantMinutes)
			}
			if got.EffectiveWatts != tt.wantEffective {
				t.Errorf("EffectiveWatts = %d, want %d", got.EffectiveWatts, tt.wantEffective)
			}
		})
	}
}
