package utils

import "math"

// SafeFloat заменяет NaN и Inf на ноль для безопасной сериализации
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	return v
}

// Mean вычисляет среднее значение
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Min находит минимальное значение
func Min(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max находит максимальное значение
func Max(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Round1 округляет до одного знака после запятой
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// LinearRegression подбирает прямую y = slope*x + intercept методом
// наименьших квадратов. Для меньше двух точек возвращает NaN.
func LinearRegression(x, y []float64) (slope, intercept float64) {
	if len(x) < 2 || len(x) != len(y) {
		return math.NaN(), math.NaN()
	}

	meanX := Mean(x)
	meanY := Mean(y)

	num := 0.0
	den := 0.0
	for i := range x {
		dx := x[i] - meanX
		num += dx * (y[i] - meanY)
		den += dx * dx
	}

	if den == 0 {
		return math.NaN(), math.NaN()
	}

	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept
}
