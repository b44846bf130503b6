package main

import (
	"flag"
	"log"

	"github.com/dage/tile-landscape/internal/config"
	"github.com/dage/tile-landscape/internal/logging"
	"github.com/dage/tile-landscape/internal/texture"
)

func main() {
	var (
		width       = flag.Int("width", 256, "Ширина текстуры в пикселях")
		height      = flag.Int("height", 256, "Высота текстуры в пикселях")
		scale       = flag.Float64("scale", 50.0, "Пространственный масштаб шума")
		octaves     = flag.Int("octaves", 4, "Количество октав")
		persistence = flag.Float64("persistence", 0.5, "Затухание амплитуды на октаву")
		lacunarity  = flag.Float64("lacunarity", 2.0, "Рост частоты на октаву")
		seed        = flag.Int64("seed", 0, "Сид генерации (без флага — случайный)")
		algo        = flag.String("algo", texture.AlgorithmSimplex, "Алгоритм шума: simplex или perlin")
		out         = flag.String("out", "public/assets/normal.png", "Путь итогового PNG")
		preview     = flag.String("preview", "", "Путь превью стыковки 2x2 (опционально)")
		raw         = flag.String("raw", "", "Путь сырого 16-битного поля высот, gzip (опционально)")
		configPath  = flag.String("config", "", "Путь YAML пресета (или ENV NOISEGEN_CONFIG)")
	)
	flag.Parse()

	if err := logging.Init("noisegen"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.Close()

	params := texture.DefaultParams()

	// Пресет из конфига перекрывает встроенные дефолты
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg != nil {
		applyConfig(&params, &cfg.Texture)
		logging.Debug("Применён пресет конфигурации")
	}

	// Явно заданные флаги перекрывают пресет
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			params.Width = *width
		case "height":
			params.Height = *height
		case "scale":
			params.Scale = *scale
		case "octaves":
			params.Octaves = *octaves
		case "persistence":
			params.Persistence = *persistence
		case "lacunarity":
			params.Lacunarity = *lacunarity
		case "seed":
			params.Seed = seed
		case "algo":
			params.Algorithm = *algo
		case "out":
			params.OutputPath = *out
		case "preview":
			params.PreviewPath = *preview
		case "raw":
			params.RawPath = *raw
		}
	})

	if params.Seed == nil {
		logging.Info("🎲 Сид не задан — будет выбран случайно (запуск невоспроизводим)")
	}

	result, err := texture.Generate(params)
	if err != nil {
		logging.Error("Ошибка генерации: %v", err)
		log.Fatalf("❌ Ошибка генерации текстуры: %v", err)
	}

	logging.Info("✅ Готово: %dx%d, алгоритм %s, сид %d", params.Width, params.Height, params.Algorithm, result.Seed)
	if result.PreviewPath != "" {
		logging.Info("   🔍 Превью стыковки: %s", result.PreviewPath)
	}
	if result.RawPath != "" {
		logging.Info("   📦 Поле высот: %s", result.RawPath)
	}
	if result.ManifestPath != "" {
		logging.Info("   📄 Манифест: %s", result.ManifestPath)
	}
}

// applyConfig переносит ненулевые поля пресета в параметры генерации
func applyConfig(p *texture.Params, tc *config.TextureConfig) {
	if tc.Width > 0 {
		p.Width = tc.Width
	}
	if tc.Height > 0 {
		p.Height = tc.Height
	}
	if tc.Scale > 0 {
		p.Scale = tc.Scale
	}
	if tc.Octaves > 0 {
		p.Octaves = tc.Octaves
	}
	if tc.Persistence > 0 {
		p.Persistence = tc.Persistence
	}
	if tc.Lacunarity > 0 {
		p.Lacunarity = tc.Lacunarity
	}
	if tc.Seed != nil {
		p.Seed = tc.Seed
	}
	if tc.Algorithm != "" {
		p.Algorithm = tc.Algorithm
	}
	if tc.OutputPath != "" {
		p.OutputPath = tc.OutputPath
	}
	if tc.PreviewPath != "" {
		p.PreviewPath = tc.PreviewPath
	}
	if tc.RawPath != "" {
		p.RawPath = tc.RawPath
	}
}
