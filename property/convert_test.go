// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogs(t *testing.T) {
	t.Helper()

	SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() {
		SetLogger(nil)
	})
}

func TestToBool(t *testing.T) {
	discardLogs(t)

	testCases := []struct {
		name        string
		input       string
		expectedVal bool
		expectSet   bool
	}{
		{name: "parses true", input: "true", expectedVal: true, expectSet: true},
		{name: "parses false", input: "false", expectedVal: false, expectSet: true},
		{name: "parses 1 as true", input: "1", expectedVal: true, expectSet: true},
		{name: "parses 0 as false", input: "0", expectedVal: false, expectSet: true},
		{name: "absent on invalid bool", input: "not-a-bool", expectSet: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Map(Of("debug", tc.input), ToBool)
			v, ok := p.Value()
			require.Equal(t, tc.expectSet, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestToInt(t *testing.T) {
	discardLogs(t)

	testCases := []struct {
		name        string
		input       any
		expectedVal int
		expectSet   bool
	}{
		{name: "parses positive int", input: "42", expectedVal: 42, expectSet: true},
		{name: "parses negative int", input: "-42", expectedVal: -42, expectSet: true},
		{name: "converts int64", input: int64(7), expectedVal: 7, expectSet: true},
		{name: "converts float", input: 3.0, expectedVal: 3, expectSet: true},
		{name: "parses zero padded int in base 10", input: "010", expectedVal: 10, expectSet: true},
		{name: "parses zero padded int with an 8", input: "08", expectedVal: 8, expectSet: true},
		{name: "parses zero padded port", input: "0080", expectedVal: 80, expectSet: true},
		{name: "absent on hex string", input: "0x10", expectSet: false},
		{name: "absent on invalid int", input: "not-an-int", expectSet: false},
		{name: "absent on unsupported type", input: struct{}{}, expectSet: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Map(Of("workers", tc.input), ToInt)
			v, ok := p.Value()
			require.Equal(t, tc.expectSet, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestToInt64(t *testing.T) {
	discardLogs(t)

	testCases := []struct {
		name        string
		input       string
		expectedVal int64
		expectSet   bool
	}{
		{name: "parses max int64", input: "9223372036854775807", expectedVal: 9223372036854775807, expectSet: true},
		{name: "parses min int64", input: "-9223372036854775808", expectedVal: -9223372036854775808, expectSet: true},
		{name: "parses zero padded int64 in base 10", input: "010", expectedVal: 10, expectSet: true},
		{name: "parses zero padded int64 with an 8", input: "08", expectedVal: 8, expectSet: true},
		{name: "absent on invalid int64", input: "not-an-int64", expectSet: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Map(Of("limit", tc.input), ToInt64)
			v, ok := p.Value()
			require.Equal(t, tc.expectSet, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestToFloat64(t *testing.T) {
	discardLogs(t)

	testCases := []struct {
		name        string
		input       string
		expectedVal float64
		expectSet   bool
	}{
		{name: "parses float", input: "3.14159", expectedVal: 3.14159, expectSet: true},
		{name: "parses negative float", input: "-2.71828", expectedVal: -2.71828, expectSet: true},
		{name: "parses scientific notation", input: "1.23e10", expectedVal: 1.23e10, expectSet: true},
		{name: "absent on invalid float", input: "not-a-float", expectSet: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Map(Of("ratio", tc.input), ToFloat64)
			v, ok := p.Value()
			require.Equal(t, tc.expectSet, ok)
			require.InDelta(t, tc.expectedVal, v, 0.00001)
		})
	}
}

func TestToDuration(t *testing.T) {
	discardLogs(t)

	testCases := []struct {
		name        string
		input       string
		expectedVal time.Duration
		expectSet   bool
	}{
		{name: "parses seconds", input: "5s", expectedVal: 5 * time.Second, expectSet: true},
		{name: "parses minutes", input: "10m", expectedVal: 10 * time.Minute, expectSet: true},
		{name: "parses complex duration", input: "1h30m45s", expectedVal: time.Hour + 30*time.Minute + 45*time.Second, expectSet: true},
		{name: "parses bare number as nanoseconds", input: "10", expectedVal: 10, expectSet: true},
		{name: "absent on invalid duration", input: "not-a-duration", expectSet: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Map(Of("timeout", tc.input), ToDuration)
			v, ok := p.Value()
			require.Equal(t, tc.expectSet, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestToString(t *testing.T) {
	p := Map(Of[any]("port", 8080), ToString)
	if !assert.Equal(t, "8080", p.OrElse("")) {
		return
	}
}

func TestToStringSlice(t *testing.T) {
	p := Map(Of("hosts", "a.internal b.internal"), ToStringSlice)
	if !assert.Equal(t, []string{"a.internal", "b.internal"}, p.OrElse(nil)) {
		return
	}
}

type logLevel int

const (
	levelInfo logLevel = iota
	levelDebug
)

func TestEnum(t *testing.T) {
	levels := Enum(map[string]logLevel{
		"info":  levelInfo,
		"debug": levelDebug,
	})

	t.Run("will convert the name", func(t *testing.T) {
		t.Run("if it is one of the allowed names", func(t *testing.T) {
			lvl, err := Map(Of("log.level", "debug"), levels).Get()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, levelDebug, lvl) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the name is not allowed", func(t *testing.T) {
			_, err := levels("trace")

			var uerr UnknownEnumValueError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.Equal(t, "trace", uerr.Value) {
				return
			}
			if !assert.NotEmpty(t, uerr.Error()) {
				return
			}
		})
	})

	t.Run("will fall back to the default", func(t *testing.T) {
		t.Run("if the name is not allowed", func(t *testing.T) {
			discardLogs(t)

			lvl := Map(Of("log.level", "trace"), levels).OrElse(levelInfo)
			if !assert.Equal(t, levelInfo, lvl) {
				return
			}
		})
	})
}
