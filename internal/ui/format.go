package ui

import "strconv"

// FormatVND renders an amount in đồng the way the storefront displays
// prices: digits grouped in threes with '.', followed by the currency sign
// (12000 -> "12.000₫").
func FormatVND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}
	return sign + string(grouped) + "₫"
}
