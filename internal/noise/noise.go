package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler возвращает значение когерентного шума для координат (x, y).
// Реализации обязаны быть чистыми функциями координат и параметров
// конструктора: без состояния между вызовами, чтобы пиксели можно было
// обходить в любом порядке.
type Sampler interface {
	// At возвращает значение шума, как правило в диапазоне [-1, 1]
	At(x, y float64) float64
	// Seed возвращает сид, с которым создан сэмплер
	Seed() int64
}

// SeamlessSimplex — многооктавный OpenSimplex-шум, периодичный по обеим
// осям. Координаты (x, y) отображаются на тор в 4D: каждая ось становится
// окружностью с периодом periodX/periodY, поэтому значение в точке x и в
// точке x+periodX совпадает точно, и текстура стыкуется без швов.
type SeamlessSimplex struct {
	noise       opensimplex.Noise
	seed        int64
	octaves     int
	persistence float64
	lacunarity  float64
	periodX     float64
	periodY     float64
}

// NewSeamlessSimplex создаёт бесшовный сэмплер с указанным сидом.
// Октавы суммируются с затуханием амплитуды persistence и ростом
// частоты lacunarity; periodX и periodY задают период повторения
// в координатах шума.
func NewSeamlessSimplex(seed int64, octaves int, persistence, lacunarity, periodX, periodY float64) *SeamlessSimplex {
	return &SeamlessSimplex{
		noise:       opensimplex.New(seed),
		seed:        seed,
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
		periodX:     periodX,
		periodY:     periodY,
	}
}

// At возвращает fBm-значение шума для координат (x, y)
func (s *SeamlessSimplex) At(x, y float64) float64 {
	theta := 2 * math.Pi * x / s.periodX
	phi := 2 * math.Pi * y / s.periodY

	// Точка на торе: две окружности единичного радиуса
	nx, ny := math.Cos(theta), math.Sin(theta)
	nz, nw := math.Cos(phi), math.Sin(phi)

	var sum, norm float64
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < s.octaves; i++ {
		sum += s.noise.Eval4(nx*frequency, ny*frequency, nz*frequency, nw*frequency) * amplitude
		norm += amplitude
		amplitude *= s.persistence
		frequency *= s.lacunarity
	}
	return sum / norm
}

// Seed возвращает сид сэмплера
func (s *SeamlessSimplex) Seed() int64 {
	return s.seed
}

// Perlin — классический шум Перлина поверх aquilax/go-perlin.
// Не периодичен, поэтому подходит только для карт, которым не нужна
// бесшовная стыковка.
type Perlin struct {
	noise *perlin.Perlin
	seed  int64
}

// NewPerlin создаёт сэмплер Перлина с указанным сидом.
// Библиотека принимает alpha (вес октавы при суммировании, обратен
// persistence) и beta (множитель частоты, он же lacunarity).
func NewPerlin(seed int64, octaves int, persistence, lacunarity float64) *Perlin {
	return &Perlin{
		noise: perlin.NewPerlin(1.0/persistence, lacunarity, int32(octaves), seed),
		seed:  seed,
	}
}

// At возвращает значение шума Перлина для координат (x, y)
func (p *Perlin) At(x, y float64) float64 {
	return p.noise.Noise2D(x, y)
}

// Seed возвращает сид сэмплера
func (p *Perlin) Seed() int64 {
	return p.seed
}
