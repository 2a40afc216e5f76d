// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Dot Smash"
	DotRadius    = 50
	TotalRounds  = 10
	MaxDeltaTime = 0.06

	SpawnAnimDuration = 0.18 // секунды, "выпрыгивание" точки после перемещения
	DotStrokeWidth    = 3.0

	ResponseFontSize  = 30
	RemainingFontSize = 60
	GameOverFontSize  = 80
	AverageFontSize   = 50
	FontDPI           = 72

	ResponseTextX  = 10
	ResponseTextY  = 10
	RemainingTextX = 10
	RemainingTextY = 48
	AverageTextY   = 330 // центр строки со средним временем
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	DotColor        = color.RGBA{0, 255, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	HintColor       = color.RGBA{150, 150, 150, 255}
)
