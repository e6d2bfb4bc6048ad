package fsutils

import (
	"fmt"
	"strconv"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// SizeText returns a human readable size string using binary units with
// one decimal place. Sizes below 1 KiB are printed as whole bytes.
// GiB is the largest unit.
func SizeText(size int64) string {
	b := float64(size)
	switch {
	case b >= gib:
		return fmt.Sprintf("%.1f GiB", b/gib)
	case b >= mib:
		return fmt.Sprintf("%.1f MiB", b/mib)
	case b >= kib:
		return fmt.Sprintf("%.1f KiB", b/kib)
	default:
		return strconv.FormatInt(size, 10) + " B"
	}
}
