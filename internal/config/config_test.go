package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathNoEnv(t *testing.T) {
	// Без пути и без ENV конфиг считается незаданным
	t.Setenv("NOISEGEN_CONFIG", "")

	cfg, err := Load("")
	assert.NoError(t, err, "Отсутствие конфига — не ошибка")
	assert.Nil(t, cfg, "Должны использоваться встроенные дефолты")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	data := `texture:
  width: 512
  height: 128
  scale: 25.5
  octaves: 6
  persistence: 0.4
  lacunarity: 2.5
  seed: 7
  algorithm: perlin
  output_path: out/bump.png
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	tc := cfg.Texture
	assert.Equal(t, 512, tc.Width, "Ширина должна читаться из пресета")
	assert.Equal(t, 128, tc.Height, "Высота должна читаться из пресета")
	assert.Equal(t, 25.5, tc.Scale, "Масштаб должен читаться из пресета")
	assert.Equal(t, 6, tc.Octaves, "Октавы должны читаться из пресета")
	assert.Equal(t, 0.4, tc.Persistence, "Persistence должна читаться из пресета")
	assert.Equal(t, 2.5, tc.Lacunarity, "Lacunarity должна читаться из пресета")
	require.NotNil(t, tc.Seed, "Сид задан в пресете")
	assert.Equal(t, int64(7), *tc.Seed, "Сид должен читаться из пресета")
	assert.Equal(t, "perlin", tc.Algorithm, "Алгоритм должен читаться из пресета")
	assert.Equal(t, "out/bump.png", tc.OutputPath, "Путь вывода должен читаться из пресета")
}

func TestLoad_FromEnv(t *testing.T) {
	// Путь может прийти через ENV NOISEGEN_CONFIG
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("texture:\n  width: 64\n"), 0644))
	t.Setenv("NOISEGEN_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 64, cfg.Texture.Width, "Конфиг из ENV должен применяться")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "нет-такого.yaml"))
	assert.Error(t, err, "Несуществующий файл — ошибка ввода-вывода")
}

func TestLoad_MalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("texture: [совсем не объект"), 0644))

	_, err := Load(path)
	assert.Error(t, err, "Битый YAML должен давать ошибку разбора")
}
