// Package manifest пишет рядом с каждой текстурой YAML-сайдкар с полными
// параметрами генерации и контрольными суммами. По нему конвейер
// определяет, чем был получен файл, и пропускает повторную генерацию,
// если параметры не менялись.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Params — полностью разрешённые параметры генерации, включая
// фактический сид
type Params struct {
	Algorithm   string  `yaml:"algorithm"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Seed        int64   `yaml:"seed"`
}

// canonical возвращает каноническую строку параметров для хеширования
func (p Params) canonical() string {
	return fmt.Sprintf("%s|%dx%d|scale=%g|oct=%d|pers=%g|lac=%g|seed=%d",
		p.Algorithm, p.Width, p.Height, p.Scale, p.Octaves, p.Persistence, p.Lacunarity, p.Seed)
}

// Manifest описывает один сгенерированный ассет
type Manifest struct {
	RunID       string `yaml:"run_id"`
	GeneratedAt string `yaml:"generated_at"`
	Params      Params `yaml:"params"`
	ParamsHash  string `yaml:"params_hash"`
	PixelsHash  string `yaml:"pixels_hash"`
}

// Build собирает манифест для набора параметров и готовых пикселей
func Build(p Params, pixels []byte) *Manifest {
	return &Manifest{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Params:      p,
		ParamsHash:  fmt.Sprintf("%016x", xxhash.Sum64String(p.canonical())),
		PixelsHash:  fmt.Sprintf("%016x", xxhash.Sum64(pixels)),
	}
}

// Matches сообщает, описывает ли манифест точно такой же набор параметров.
// Используется конвейером для пропуска повторной генерации.
func (m *Manifest) Matches(p Params) bool {
	return m.ParamsHash == fmt.Sprintf("%016x", xxhash.Sum64String(p.canonical()))
}

// SidecarPath возвращает путь сайдкара для файла текстуры
func SidecarPath(texturePath string) string {
	return texturePath + ".manifest.yaml"
}

// Write сохраняет манифест по указанному пути
func (m *Manifest) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания директории %s: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("ошибка сериализации манифеста: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи манифеста %s: %w", path, err)
	}
	return nil
}

// Load читает манифест из файла
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ошибка разбора манифеста %s: %w", path, err)
	}
	return &m, nil
}
