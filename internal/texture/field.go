package texture

// HeightField представляет карту высот: по одному значению на пиксель,
// построчно (row-major). Поле заполняется целиком до нормализации.
type HeightField struct {
	Width  int
	Height int
	Values []float64
}

// NewHeightField создаёт пустое поле указанных размеров
func NewHeightField(width, height int) *HeightField {
	return &HeightField{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At возвращает значение в строке row, колонке col
func (f *HeightField) At(row, col int) float64 {
	return f.Values[row*f.Width+col]
}

// Set записывает значение в строке row, колонке col
func (f *HeightField) Set(row, col int, v float64) {
	f.Values[row*f.Width+col] = v
}

// MinMax возвращает глобальные минимум и максимум поля
func (f *HeightField) MinMax() (min, max float64) {
	min, max = f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Normalize линейно отображает поле так, что минимум становится 0.0,
// а максимум — 1.0. Вырожденное плоское поле (max == min) превращается
// в нулевое, а не в деление на ноль.
func Normalize(f *HeightField) *HeightField {
	out := NewHeightField(f.Width, f.Height)

	min, max := f.MinMax()
	if max == min {
		return out
	}

	span := max - min
	for i, v := range f.Values {
		out.Values[i] = (v - min) / span
	}
	return out
}

// Quantize переводит нормализованное поле в байты [0, 255].
// Приведение усекает дробную часть, а не округляет: так 1.0 даёт 255,
// а 0.0 даёт 0, и результат бит-в-бит воспроизводим.
func Quantize(f *HeightField) []uint8 {
	pixels := make([]uint8, len(f.Values))
	for i, v := range f.Values {
		pixels[i] = uint8(v * 255)
	}
	return pixels
}
