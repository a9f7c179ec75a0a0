// Package calib holds the detector calibration curve of the bridge.
package calib

// Len is the number of entries in the calibration table (one per 10-bit code).
const Len = 1024

// MaxCode is the largest valid detector code.
const MaxCode = Len - 1

// Volts returns the line voltage for a detector code.
// Codes outside the table saturate to the first or last entry.
func Volts(code int) float32 {
	return lineVolts[Clamp(code)]
}

// Clamp limits a code to the valid table index range.
func Clamp(code int) int {
	if code < 0 {
		return 0
	}
	if code > MaxCode {
		return MaxCode
	}
	return code
}

// Code returns the smallest code whose voltage is not below v.
// Voltages above the table saturate to MaxCode.
func Code(v float32) int {
	lo, hi := 0, MaxCode
	for lo < hi {
		mid := (lo + hi) / 2
		if lineVolts[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// TenthsOf converts volts to the tenths-of-a-volt fixed point representation.
func TenthsOf(v float32) int {
	return int(v * 10)
}
