package seg2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixIdentity(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.False(t, Translate(1, 0).IsIdentity())
	p := Pt(3, -7)
	assert.Equal(t, p, Identity().Transform(p))
}

func TestMatrixTranslate(t *testing.T) {
	s := New(0, 0, 10, 0).Transformed(Translate(2, 3))
	assert.Equal(t, New(2, 3, 12, 3), s)
}

func TestMatrixScale(t *testing.T) {
	s := New(1, 1, 2, 4).Transformed(Scale(2, 0.5))
	assert.Equal(t, New(2, 0.5, 4, 2), s)
}

func TestMatrixRotate(t *testing.T) {
	// Quarter turn, clockwise on screen with y down: +x maps to +y
	p := Rotate(math.Pi / 2).Transform(Pt(1, 0))
	assert.InDelta(t, 0, p.X, Epsilon)
	assert.InDelta(t, 1, p.Y, Epsilon)

	// Rotation preserves segment length
	s := New(-3, 2, 5, 7)
	rotated := s.Transformed(Rotate(math.Pi / 7))
	assert.InDelta(t, s.Length(), rotated.Length(), Epsilon)
}

func TestMatrixMultiply(t *testing.T) {
	// Applying the product matches applying m first, then other
	m := Rotate(math.Pi / 3)
	other := Translate(4, -2)
	p := Pt(2, 5)

	sequential := other.Transform(m.Transform(p))
	composed := m.Multiply(other).Transform(p)
	assert.InDelta(t, sequential.X, composed.X, Epsilon)
	assert.InDelta(t, sequential.Y, composed.Y, Epsilon)
}
