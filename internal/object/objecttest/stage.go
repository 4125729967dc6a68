// Package objecttest provides a Stage that records what it was asked to draw.
package objecttest

import "github.com/tomz197/starwarp/internal/object"

// Stage records every visual it creates.
type Stage struct {
	Visuals []*Visual
}

// Create implements object.Stage.
func (s *Stage) Create(kind object.Kind) object.Visual {
	v := &Visual{Kind: kind}
	s.Visuals = append(s.Visuals, v)
	return v
}

// Live returns the visuals of kind that have not been destroyed.
func (s *Stage) Live(kind object.Kind) []*Visual {
	var out []*Visual
	for _, v := range s.Visuals {
		if v.Kind == kind && !v.Destroyed {
			out = append(out, v)
		}
	}
	return out
}

// Created returns how many visuals of kind were ever created.
func (s *Stage) Created(kind object.Kind) int {
	n := 0
	for _, v := range s.Visuals {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Visual stores the last value of every property.
type Visual struct {
	Kind          object.Kind
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	Text          string
	Destroyed     bool
	DestroyCalls  int
}

func (v *Visual) SetPosition(x, y float64)      { v.X, v.Y = x, y }
func (v *Visual) SetSize(width, height float64) { v.Width, v.Height = width, height }
func (v *Visual) SetScale(sx, sy float64)       { v.ScaleX, v.ScaleY = sx, sy }
func (v *Visual) SetRotation(angle float64)     { v.Rotation = angle }
func (v *Visual) SetText(text string)           { v.Text = text }

func (v *Visual) Destroy() {
	v.Destroyed = true
	v.DestroyCalls++
}
