package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeamlessSimplex_Determinism(t *testing.T) {
	// Два сэмплера с одним сидом обязаны давать одинаковые значения
	a := NewSeamlessSimplex(42, 4, 0.5, 2.0, 256, 256)
	b := NewSeamlessSimplex(42, 4, 0.5, 2.0, 256, 256)

	for i := 0; i < 64; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 1.13
		assert.Equal(t, a.At(x, y), b.At(x, y), "Значения шума должны совпадать для одного сида")
	}
}

func TestSeamlessSimplex_DifferentSeeds(t *testing.T) {
	// Разные сиды должны давать разные поля
	a := NewSeamlessSimplex(1, 4, 0.5, 2.0, 256, 256)
	b := NewSeamlessSimplex(2, 4, 0.5, 2.0, 256, 256)

	differs := false
	for i := 0; i < 64 && !differs; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 1.13
		differs = a.At(x, y) != b.At(x, y)
	}
	assert.True(t, differs, "Разные сиды должны менять значения шума")
}

func TestSeamlessSimplex_Tileability(t *testing.T) {
	// Значение через один период должно совпадать: край текстуры
	// стыкуется с противоположным
	const (
		periodX = 64.0
		periodY = 48.0
	)
	s := NewSeamlessSimplex(7, 4, 0.5, 2.0, periodX, periodY)

	for i := 0; i < 48; i++ {
		y := float64(i) * 0.73
		assert.InDelta(t, s.At(0, y), s.At(periodX, y), 1e-9,
			"Шум должен повторяться с периодом по первой оси")

		x := float64(i) * 0.73
		assert.InDelta(t, s.At(x, 0), s.At(x, periodY), 1e-9,
			"Шум должен повторяться с периодом по второй оси")
	}
}

func TestSeamlessSimplex_SingleOctave(t *testing.T) {
	// Одна октава — допустимый минимум
	s := NewSeamlessSimplex(0, 1, 0.5, 2.0, 32, 32)

	v := s.At(3.5, 7.25)
	assert.GreaterOrEqual(t, v, -1.5, "Значение шума не должно уходить далеко за [-1, 1]")
	assert.LessOrEqual(t, v, 1.5, "Значение шума не должно уходить далеко за [-1, 1]")
	assert.Equal(t, int64(0), s.Seed(), "Сид должен сохраняться")
}

func TestPerlin_Determinism(t *testing.T) {
	// Сэмплер Перлина тоже обязан быть детерминированным
	a := NewPerlin(42, 4, 0.5, 2.0)
	b := NewPerlin(42, 4, 0.5, 2.0)

	for i := 1; i <= 64; i++ {
		x := float64(i) * 0.11
		y := float64(i) * 0.29
		assert.Equal(t, a.At(x, y), b.At(x, y), "Значения Перлина должны совпадать для одного сида")
	}
	assert.Equal(t, int64(42), a.Seed(), "Сид должен сохраняться")
}
