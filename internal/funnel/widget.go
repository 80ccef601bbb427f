package funnel

import (
	"fmt"
	"time"
)

// Widget kinds supported by the editor.
const (
	WidgetCountdown = "countdown"
	WidgetCarousel  = "carousel"
	WidgetMarquee   = "marquee"
	WidgetLoader    = "loader"
)

// Widget is one block on a page. Exactly the settings struct matching Type
// must be set; the animation itself runs client-side, the server only stores
// and validates the configuration.
type Widget struct {
	Type      string             `json:"type"`
	Countdown *CountdownSettings `json:"countdown,omitempty"`
	Carousel  *CarouselSettings  `json:"carousel,omitempty"`
	Marquee   *MarqueeSettings   `json:"marquee,omitempty"`
	Loader    *LoaderSettings    `json:"loader,omitempty"`
}

type CountdownSettings struct {
	TargetTime  time.Time `json:"targetTime"`
	ExpiredText string    `json:"expiredText"`
}

type CarouselSettings struct {
	Slides     []string `json:"slides"`
	IntervalMS int      `json:"intervalMs"`
	Loop       bool     `json:"loop"`
}

type MarqueeSettings struct {
	Text      string `json:"text"`
	Speed     int    `json:"speed"` // px per second
	Direction string `json:"direction"`
}

type LoaderSettings struct {
	Style string `json:"style"`
	Color string `json:"color"`
}

var loaderStyles = map[string]bool{
	"spinner": true,
	"dots":    true,
	"bar":     true,
	"pulse":   true,
}

// Validate checks the widget configuration for saving a draft.
func (w Widget) Validate() error {
	switch w.Type {
	case WidgetCountdown:
		if w.Countdown == nil {
			return fmt.Errorf("countdown settings are required")
		}
		if w.Countdown.TargetTime.IsZero() {
			return fmt.Errorf("countdown target time is required")
		}
	case WidgetCarousel:
		if w.Carousel == nil || len(w.Carousel.Slides) == 0 {
			return fmt.Errorf("carousel needs at least one slide")
		}
		if w.Carousel.IntervalMS < 100 {
			return fmt.Errorf("carousel interval must be at least 100ms")
		}
	case WidgetMarquee:
		if w.Marquee == nil || w.Marquee.Text == "" {
			return fmt.Errorf("marquee text is required")
		}
		if w.Marquee.Direction != "" && w.Marquee.Direction != "left" && w.Marquee.Direction != "right" {
			return fmt.Errorf("marquee direction must be 'left' or 'right'")
		}
	case WidgetLoader:
		if w.Loader == nil || !loaderStyles[w.Loader.Style] {
			return fmt.Errorf("loader style must be one of spinner, dots, bar, pulse")
		}
	default:
		return fmt.Errorf("unknown widget type %q", w.Type)
	}
	return nil
}

// ValidateForPublish runs draft validation plus the stricter publish rules:
// a countdown must still be in the future when the funnel goes live.
func (f *Funnel) ValidateForPublish(now time.Time) error {
	if len(f.Pages) == 0 {
		return fmt.Errorf("a funnel needs at least one page")
	}
	for _, p := range f.Pages {
		for _, w := range p.Widgets {
			if err := w.Validate(); err != nil {
				return fmt.Errorf("page %q: %w", p.Name, err)
			}
			if w.Type == WidgetCountdown && !w.Countdown.TargetTime.After(now) {
				return fmt.Errorf("page %q: countdown target is in the past", p.Name)
			}
		}
	}
	return nil
}

// CountdownRemaining returns the time left on a countdown, clamped at zero.
func CountdownRemaining(c CountdownSettings, now time.Time) time.Duration {
	d := c.TargetTime.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
