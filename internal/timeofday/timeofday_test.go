package timeofday

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		wantHour   int
		wantMinute int
	}{
		{"3:00pm", 15, 0},
		{"03:00PM", 15, 0},
		{"3:00 pm", 15, 0},
		{"9:30am", 9, 30},
		{"12:00am", 0, 0},
		{"12:00pm", 12, 0},
		{"12:45pm", 12, 45},
		{"9:00", 9, 0},
		{"09:00", 9, 0},
		{"12:15", 0, 15},
		{"13:00", 13, 0},
		{"22:00", 22, 0},
		{"0:00", 0, 0},
		{"  11:59pm ", 23, 59},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantHour, got.Hour())
			assert.Equal(t, tc.wantMinute, got.Minute())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"noon",
		"3pm",
		"3:0pm",
		"13:00pm",
		"0:30am",
		"24:00",
		"10:60",
		"10:00xm",
		"10.00",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)

			var malformed *MalformedTimeError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, in, malformed.Value)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "12:00am", MustNew(0, 0).String())
	assert.Equal(t, "9:05am", MustNew(9, 5).String())
	assert.Equal(t, "12:00pm", MustNew(12, 0).String())
	assert.Equal(t, "11:59pm", MustNew(23, 59).String())
}

func TestStringParseRoundTrip(t *testing.T) {
	for m := 0; m < minutesPerDay; m += 7 {
		tod := TimeOfDay(m)
		assert.Equal(t, tod, MustParse(tod.String()))
	}
}

func TestOrdering(t *testing.T) {
	morning := MustParse("10:00am")
	afternoon := MustParse("2:00pm")

	assert.True(t, morning.Before(afternoon))
	assert.True(t, afternoon.After(morning))
	assert.False(t, morning.Before(morning))
	assert.False(t, morning.After(morning))
}

func TestNew_OutOfRange(t *testing.T) {
	_, err := New(24, 0)
	require.Error(t, err)

	_, err = New(10, -1)
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	var payload struct {
		At TimeOfDay `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"4:30pm"}`), &payload))
	assert.Equal(t, MustNew(16, 30), payload.At)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"4:30pm"}`, string(out))

	err = json.Unmarshal([]byte(`{"at":"late"}`), &payload)
	var malformed *MalformedTimeError
	assert.True(t, errors.As(err, &malformed))
}
