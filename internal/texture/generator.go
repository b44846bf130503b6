package texture

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dage/tile-landscape/internal/logging"
	"github.com/dage/tile-landscape/internal/manifest"
	"github.com/dage/tile-landscape/internal/noise"
)

// ErrInvalidParameter возвращается до начала сэмплирования, если параметры
// генерации не проходят проверку
var ErrInvalidParameter = errors.New("недопустимый параметр генерации")

// Поддерживаемые алгоритмы шума
const (
	AlgorithmSimplex = "simplex" // бесшовный OpenSimplex (по умолчанию)
	AlgorithmPerlin  = "perlin"  // классический Перлин, без стыковки краёв
)

// Params описывает один запуск генерации текстуры
type Params struct {
	Width       int     // ширина в пикселях
	Height      int     // высота в пикселях
	Scale       float64 // пространственный масштаб: координаты шума = пиксель / Scale
	Octaves     int     // количество суммируемых слоёв шума
	Persistence float64 // затухание амплитуды на октаву
	Lacunarity  float64 // рост частоты на октаву
	Seed        *int64  // nil — выбрать псевдослучайно при запуске
	Algorithm   string  // AlgorithmSimplex или AlgorithmPerlin
	OutputPath  string  // путь итогового PNG; родительские директории создаются
	PreviewPath string  // опционально: превью стыковки 2x2
	RawPath     string  // опционально: сырое 16-битное поле высот (gzip)
}

// DefaultParams возвращает параметры по умолчанию
func DefaultParams() Params {
	return Params{
		Width:       256,
		Height:      256,
		Scale:       50.0,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Algorithm:   AlgorithmSimplex,
		OutputPath:  "public/assets/normal.png",
	}
}

// Validate проверяет параметры до начала работы
func (p *Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: размеры должны быть положительными, получено %dx%d",
			ErrInvalidParameter, p.Width, p.Height)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: scale должен быть положительным, получено %g",
			ErrInvalidParameter, p.Scale)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves должно быть не меньше 1, получено %d",
			ErrInvalidParameter, p.Octaves)
	}
	if p.Persistence <= 0 {
		return fmt.Errorf("%w: persistence должна быть положительной, получено %g",
			ErrInvalidParameter, p.Persistence)
	}
	if p.Lacunarity <= 0 {
		return fmt.Errorf("%w: lacunarity должна быть положительной, получено %g",
			ErrInvalidParameter, p.Lacunarity)
	}
	switch p.Algorithm {
	case AlgorithmSimplex, AlgorithmPerlin:
	default:
		return fmt.Errorf("%w: неизвестный алгоритм %q", ErrInvalidParameter, p.Algorithm)
	}
	return nil
}

// Result описывает итог успешной генерации
type Result struct {
	Seed         int64   // фактически использованный сид
	Min          float64 // минимум сырого поля высот
	Max          float64 // максимум сырого поля высот
	OutputPath   string
	PreviewPath  string
	RawPath      string
	ManifestPath string
}

// Generate выполняет весь конвейер: сэмплирование поля высот,
// нормализация, квантование и запись PNG вместе с сайдкарами.
// Один и тот же набор параметров с заданным сидом всегда даёт
// байт-в-байт одинаковый файл.
func Generate(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := resolveSeed(p.Seed)
	logging.Debug("Генерация текстуры %dx%d, алгоритм %s, сид %d", p.Width, p.Height, p.Algorithm, seed)

	var sampler noise.Sampler
	switch p.Algorithm {
	case AlgorithmPerlin:
		sampler = noise.NewPerlin(seed, p.Octaves, p.Persistence, p.Lacunarity)
	default:
		// Первая ось сэмплера — строки, вторая — колонки, поэтому периоды
		// повторения равны height и width соответственно: край изображения
		// стыкуется с противоположным
		sampler = noise.NewSeamlessSimplex(seed, p.Octaves, p.Persistence, p.Lacunarity,
			float64(p.Height), float64(p.Width))
	}

	field := sampleField(sampler, p.Width, p.Height, p.Scale)
	min, max := field.MinMax()
	logging.Debug("Поле высот построено: min=%g, max=%g", min, max)

	normalized := Normalize(field)
	pixels := Quantize(normalized)

	if err := writePNG(p.OutputPath, pixels, p.Width, p.Height); err != nil {
		return nil, err
	}

	result := &Result{
		Seed:       seed,
		Min:        min,
		Max:        max,
		OutputPath: p.OutputPath,
	}

	if p.RawPath != "" {
		if err := writeRaw(p.RawPath, normalized); err != nil {
			return nil, err
		}
		result.RawPath = p.RawPath
	}

	if p.PreviewPath != "" {
		if err := writePreview(p.PreviewPath, pixels, p.Width, p.Height); err != nil {
			return nil, err
		}
		result.PreviewPath = p.PreviewPath
	}

	// Манифест — вспомогательный артефакт: его отказ не отменяет текстуру
	m := manifest.Build(manifestParams(p, seed), pixels)
	manifestPath := manifest.SidecarPath(p.OutputPath)
	if err := m.Write(manifestPath); err != nil {
		logging.Warn("Не удалось записать манифест %s: %v", manifestPath, err)
	} else {
		result.ManifestPath = manifestPath
	}

	logging.Info("Текстура шума сохранена: %s", p.OutputPath)
	return result, nil
}

// resolveSeed возвращает заданный сид или выбирает новый.
// Запуск без сида намеренно недетерминирован: «дай что-нибудь новое».
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
}

// sampleField обходит сетку и сэмплирует шум в каждой точке.
// Индекс строки идёт по оси x шума, колонки — по оси y; координаты
// масштабируются как пиксель / scale.
func sampleField(s noise.Sampler, width, height int, scale float64) *HeightField {
	field := NewHeightField(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			field.Set(row, col, s.At(float64(row)/scale, float64(col)/scale))
		}
	}
	return field
}

// manifestParams переносит параметры генерации в форму манифеста
func manifestParams(p Params, seed int64) manifest.Params {
	return manifest.Params{
		Algorithm:   p.Algorithm,
		Width:       p.Width,
		Height:      p.Height,
		Scale:       p.Scale,
		Octaves:     p.Octaves,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
		Seed:        seed,
	}
}
