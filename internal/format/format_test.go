package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"terabytes", 2 * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
		{"zero", 0, "0 B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Bytes(tc.input))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "34.5%", Percent(34.5))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", Percent(100))
}

func TestNumber(t *testing.T) {
	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"small", 999, "999"},
		{"thousands", 12345, "12,345"},
		{"millions", 12345678, "12,345,678"},
		{"negative", -12345, "-12,345"},
		{"zero", 0, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Number(tc.input))
		})
	}
}

func TestMillis(t *testing.T) {
	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"millis", 450, "450ms"},
		{"seconds", 1500, "1.5s"},
		{"minutes", 754_000, "12m34s"},
		{"hours", 90_060_000, "25h1m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Millis(tc.input))
		})
	}
}
