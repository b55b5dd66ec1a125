package panel

import (
	"math"
	"time"

	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/harmonica"
)

// Spring tuning for the Play button: slightly underdamped so the
// interpolation settles into the target with a visible ease.
const (
	springFPS       = 30
	springFrequency = 6.0
	springDamping   = 0.8
	springRestEps   = 1e-3
)

type animator struct {
	stop chan struct{}
	done chan struct{}
}

// playAnimation resets the slider to 0 and springs it to 1. Each step
// goes through SetValue, so the slider's OnChanged carries the motion
// down the normal parameter path.
func (p *Panel) playAnimation(sl *widget.Slider) {
	p.stopAnimation()

	a := &animator{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	p.anim = a

	go func() {
		defer close(a.done)

		spring := harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping)
		pos, vel := 0.0, 0.0
		sl.SetValue(0)

		tick := time.NewTicker(time.Second / springFPS)
		defer tick.Stop()

		for {
			select {
			case <-a.stop:
				return
			case <-tick.C:
				pos, vel = spring.Update(pos, vel, 1)
				if math.Abs(1-pos) < springRestEps && math.Abs(vel) < springRestEps {
					sl.SetValue(1)
					return
				}
				sl.SetValue(clamp(pos, 0, 1))
			}
		}
	}()
}

// stopAnimation cancels a running playback and waits for the goroutine
// to finish, so no further SetValue lands after it returns.
func (p *Panel) stopAnimation() {
	if p.anim == nil {
		return
	}
	close(p.anim.stop)
	<-p.anim.done
	p.anim = nil
}

func (p *Panel) animating() bool {
	if p.anim == nil {
		return false
	}
	select {
	case <-p.anim.done:
		return false
	default:
		return true
	}
}
