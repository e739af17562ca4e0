package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThresholdsValid(t *testing.T) {
	cases := []struct {
		name       string
		thresholds Thresholds
		want       bool
	}{
		{"defaults", DefaultThresholds(), true},
		{"warn below alert", Thresholds{Warn: time.Minute, Alert: 2 * time.Minute}, true},
		{"zero value", Thresholds{}, false},
		{"warn equals alert", Thresholds{Warn: time.Minute, Alert: time.Minute}, false},
		{"warn above alert", Thresholds{Warn: 2 * time.Minute, Alert: time.Minute}, false},
		{"negative alert", Thresholds{Warn: time.Minute, Alert: -time.Minute}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.thresholds.Valid())
		})
	}
}
