package display

import "strconv"

// FormatTenths renders a tenths fixed-point value with one decimal place.
func FormatTenths(v int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + strconv.Itoa(v/10) + "." + strconv.Itoa(v%10)
}

// FormatInt renders a whole value.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}
