package deals

import (
	"errors"
	"testing"

	"dealfinder/internal/timeofday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInterval_Priority(t *testing.T) {
	r := createRestaurant("Resolver", "9:00am", "10:00pm")

	tests := []struct {
		name      string
		start     string
		end       string
		open      string
		close     string
		wantStart string
		wantEnd   string
	}{
		{"start and end win over open and close", "10:00am", "2:00pm", "11:00am", "1:00pm", "10:00am", "2:00pm"},
		{"open and close used when start and end absent", "", "", "11:00am", "1:00pm", "11:00am", "1:00pm"},
		{"restaurant hours are the fallback", "", "", "", "", "9:00am", "10:00pm"},
		{"bounds resolve independently", "10:00am", "", "", "4:00pm", "10:00am", "4:00pm"},
		{"start falls back while end is explicit", "", "3:00pm", "", "", "9:00am", "3:00pm"},
		{"blank values are absent", "  ", "\t", "11:00am", "", "11:00am", "10:00pm"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := createDeal(tc.start, tc.end, tc.open, tc.close, 1)

			got, err := ResolveInterval(r, d)
			require.NoError(t, err)
			assert.Equal(t, at(tc.wantStart), got.Start)
			assert.Equal(t, at(tc.wantEnd), got.End)
		})
	}
}

func TestResolveInterval_MalformedChosenField(t *testing.T) {
	r := createRestaurant("Resolver", "9:00am", "10:00pm")
	d := createDeal("half past ten", "", "", "", 1)

	_, err := ResolveInterval(r, d)

	var malformed *timeofday.MalformedTimeError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "half past ten", malformed.Value)
}

func TestResolveInterval_UnusedFieldIsNotParsed(t *testing.T) {
	r := createRestaurant("Resolver", "9:00am", "10:00pm")
	// open is shadowed by start, so its content does not matter
	d := createDeal("10:00am", "2:00pm", "garbage", "garbage", 1)

	got, err := ResolveInterval(r, d)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: at("10:00am"), End: at("2:00pm")}, got)
}

func TestResolveInterval_MissingRestaurantHours(t *testing.T) {
	r := createRestaurant("Resolver", "", "")
	d := createDeal("", "", "", "", 1)

	_, err := ResolveInterval(r, d)

	var malformed *timeofday.MalformedTimeError
	assert.True(t, errors.As(err, &malformed))
}

func TestInterval_Inverted(t *testing.T) {
	assert.False(t, Interval{Start: at("3:00pm"), End: at("3:00pm")}.Inverted())
	assert.True(t, Interval{Start: at("4:00pm"), End: at("3:00pm")}.Inverted())
	assert.False(t, Interval{Start: at("3:00pm"), End: at("3:01pm")}.Inverted())
}
