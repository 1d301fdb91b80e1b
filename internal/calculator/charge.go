// Package calculator implements the storefront's charge-time estimator.
package calculator

import (
	"fmt"
	"math"
)

// chargerEfficiency is the fraction of charger wattage that actually
// reaches the battery.
const chargerEfficiency = 0.8

// defaultBatteryMAh is assumed for devices not in the capacity table.
const defaultBatteryMAh = 4000

// batteryMAh maps device keys to battery capacity in mAh.
var batteryMAh = map[string]int{
	"iphone15":    3349,
	"iphone14":    3279,
	"iphone13":    3227,
	"samsung-s24": 4000,
	"samsung-s23": 3900,
	"xiaomi14":    4610,
	"oppo-find":   5000,
}

// Estimate is the projected time to charge a device to full.
type Estimate struct {
	Hours   int
	Minutes int

	// EffectiveWatts is the charger wattage after efficiency loss, shown
	// alongside the estimate.
	EffectiveWatts int
}

// ChargeTime estimates how long charging from currentPercent to 100% takes
// on a charger of the given wattage. Unknown devices assume a 4000 mAh
// battery.
func ChargeTime(device string, currentPercent int, chargerWatts int) (Estimate, error) {
	if device == "" {
		return Estimate{}, fmt.Errorf("device must be selected")
	}
	if currentPercent < 0 || currentPercent > 100 {
		return Estimate{}, fmt.Errorf("battery percent must be between 0 and 100, got %d", currentPercent)
	}
	if chargerWatts <= 0 {
		return Estimate{}, fmt.Errorf("charger wattage must be positive, got %d", chargerWatts)
	}

	capacity, ok := batteryMAh[device]
	if !ok {
		capacity = defaultBatteryMAh
	}

	remaining := 100 - currentPercent
	energyNeeded := float64(capacity) * float64(remaining) / 100 / 1000 // kWh-equivalent units
	timeHours := energyNeeded / (float64(chargerWatts) * chargerEfficiency)

	hours := int(math.Floor(timeHours))
	minutes := int(math.Round((timeHours - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}

	return Estimate{
		Hours:          hours,
		Minutes:        minutes,
		EffectiveWatts: int(math.Round(float64(chargerWatts) * chargerEfficiency)),
	}, nil
}
