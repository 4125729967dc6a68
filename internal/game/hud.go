package game

import (
	"fmt"
	"strconv"

	"github.com/tomz197/starwarp/internal/object"
)

const hudMargin = 20

// hud owns the on-screen text: ammo, countdown and the end banner.
type hud struct {
	stage   object.Stage
	screen  object.Screen
	maxAmmo int
	ammo    *object.Text
	timer   *object.Text
	banner  *object.Text
}

func newHUD(stage object.Stage, screen object.Screen, st State, maxAmmo int) *hud {
	h := &hud{stage: stage, screen: screen, maxAmmo: maxAmmo}
	h.ammo = object.NewText(object.KindLabel, hudMargin, hudMargin, h.ammoText(st), stage)
	h.timer = object.NewText(object.KindLabel, screen.Width-50, hudMargin, h.timerText(st), stage)
	return h
}

func (h *hud) ammoText(st State) string {
	return fmt.Sprintf("Bullets: %d/%d", st.Ammo, h.maxAmmo)
}

func (h *hud) timerText(st State) string {
	return strconv.Itoa(st.CountdownDisplay())
}

func (h *hud) update(st State) {
	h.ammo.Set(h.ammoText(st))
	h.timer.Set(h.timerText(st))
}

// showBanner creates the end banner. Only the first call has an effect.
func (h *hud) showBanner(o Outcome) {
	if h.banner != nil {
		return
	}
	h.banner = object.NewText(object.KindBanner, h.screen.CenterX, h.screen.CenterY, o.String(), h.stage)
}

func (h *hud) destroy() {
	h.ammo.Destroy()
	h.timer.Destroy()
	if h.banner != nil {
		h.banner.Destroy()
	}
}
