package object_test

import (
	"testing"

	"github.com/tomz197/starwarp/internal/object"
)

func TestSpritesCompactKeepsOrder(t *testing.T) {
	var s object.Sprites
	a := s.Create(object.KindStar)
	b := s.Create(object.KindShip)
	c := s.Create(object.KindLabel)
	b.Destroy()
	a.SetPosition(1, 2)
	c.SetText("hi")

	if got := s.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	live := s.Compact()
	if len(live) != 2 || live[0].Kind != object.KindStar || live[1].Kind != object.KindLabel {
		t.Fatalf("Compact = %+v", live)
	}
	if live[0].X != 1 || live[0].Y != 2 || live[1].Text != "hi" {
		t.Fatalf("sprite properties lost: %+v %+v", live[0], live[1])
	}
	if live[0].ScaleX != 1 || live[0].ScaleY != 1 {
		t.Fatal("new sprite scale not 1")
	}
}
