package footprint

import "math"

// Footprint is the rendered size of a control.
type Footprint struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Default is used whenever the control cannot be measured yet.
var Default = Footprint{Width: 100, Height: 30}

// Target identifies the rendered element a Host measures.
type Target string

// Host is the resize-observation primitive of a rendering environment.
type Host interface {
	// Measure returns the current size of target, or false when the target
	// is not attached.
	Measure(target Target) (Footprint, bool)

	// Subscribe registers onChange for future size changes of target and
	// returns the function that releases the subscription.
	Subscribe(target Target, onChange func(Footprint)) (unsubscribe func())
}

// Sanitize clamps non-finite or negative dimensions to zero.
func Sanitize(fp Footprint) Footprint {
	return Footprint{Width: clamp(fp.Width), Height: clamp(fp.Height)}
}

// Max returns the larger of the two dimensions.
func (fp Footprint) Max() float64 {
	return max(fp.Width, fp.Height)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
