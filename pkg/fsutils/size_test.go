package fsutils

import (
	"testing"
)

func TestSizeText(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{2500, "2.4 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{2_500_000, "2.4 MiB"},
		{1024*1024*1024 - 1, "1024.0 MiB"},
		{1024 * 1024 * 1024, "1.0 GiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
		{1024 * 1024 * 1024 * 1024, "1024.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := SizeText(tt.size)
			if actual != tt.expected {
				t.Errorf("SizeText(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}
