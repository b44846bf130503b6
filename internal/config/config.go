package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации инструмента.
// Пока содержит только пресет текстуры; может расширяться.

type Config struct {
	Texture TextureConfig `yaml:"texture"`
}

// TextureConfig описывает пресет параметров генерации текстуры.
// Нулевые значения означают «не задано»: такие поля не перекрывают
// встроенные дефолты.
type TextureConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       float64 `yaml:"scale"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Seed        *int64  `yaml:"seed"`
	Algorithm   string  `yaml:"algorithm"`
	OutputPath  string  `yaml:"output_path"`
	PreviewPath string  `yaml:"preview_path"`
	RawPath     string  `yaml:"raw_path"`
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV NOISEGEN_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("NOISEGEN_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
