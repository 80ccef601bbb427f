package funnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wnow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestWidgetValidate(t *testing.T) {
	future := wnow.Add(48 * time.Hour)

	tests := []struct {
		name    string
		w       Widget
		wantErr bool
	}{
		{"valid countdown", Widget{Type: WidgetCountdown, Countdown: &CountdownSettings{TargetTime: future}}, false},
		{"countdown without settings", Widget{Type: WidgetCountdown}, true},
		{"countdown without target", Widget{Type: WidgetCountdown, Countdown: &CountdownSettings{}}, true},
		{"valid carousel", Widget{Type: WidgetCarousel, Carousel: &CarouselSettings{Slides: []string{"a.png"}, IntervalMS: 3000}}, false},
		{"carousel without slides", Widget{Type: WidgetCarousel, Carousel: &CarouselSettings{IntervalMS: 3000}}, true},
		{"carousel interval too small", Widget{Type: WidgetCarousel, Carousel: &CarouselSettings{Slides: []string{"a"}, IntervalMS: 50}}, true},
		{"valid marquee", Widget{Type: WidgetMarquee, Marquee: &MarqueeSettings{Text: "Limited offer", Direction: "left"}}, false},
		{"marquee without text", Widget{Type: WidgetMarquee, Marquee: &MarqueeSettings{}}, true},
		{"marquee bad direction", Widget{Type: WidgetMarquee, Marquee: &MarqueeSettings{Text: "x", Direction: "up"}}, true},
		{"valid loader", Widget{Type: WidgetLoader, Loader: &LoaderSettings{Style: "spinner"}}, false},
		{"loader unknown style", Widget{Type: WidgetLoader, Loader: &LoaderSettings{Style: "cube"}}, true},
		{"unknown type", Widget{Type: "video"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateForPublish(t *testing.T) {
	past := wnow.Add(-time.Hour)
	future := wnow.Add(time.Hour)

	f := &Funnel{Pages: []Page{{
		Name: "Landing",
		Widgets: []Widget{
			{Type: WidgetCountdown, Countdown: &CountdownSettings{TargetTime: future}},
		},
	}}}
	require.NoError(t, f.ValidateForPublish(wnow))

	// Expired countdowns are fine as drafts but block publishing.
	f.Pages[0].Widgets[0].Countdown.TargetTime = past
	require.NoError(t, f.Pages[0].Widgets[0].Validate())
	assert.Error(t, f.ValidateForPublish(wnow))

	empty := &Funnel{}
	assert.Error(t, empty.ValidateForPublish(wnow))
}

func TestCountdownRemaining(t *testing.T) {
	c := CountdownSettings{TargetTime: wnow.Add(90 * time.Minute)}
	assert.Equal(t, 90*time.Minute, CountdownRemaining(c, wnow))

	expired := CountdownSettings{TargetTime: wnow.Add(-time.Minute)}
	assert.Equal(t, time.Duration(0), CountdownRemaining(expired, wnow))
}
