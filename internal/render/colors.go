package render

import "github.com/gdamore/tcell/v2"

// Snow fades toward meltwater as mistakes accumulate.
var (
	snowRGB  = [3]int32{255, 255, 255}
	waterRGB = [3]int32{70, 130, 255}
)

// stageColor interpolates the snowman's colour for a stage.
func stageColor(stage, maxMistakes int) tcell.Color {
	if maxMistakes <= 0 {
		return tcell.NewRGBColor(snowRGB[0], snowRGB[1], snowRGB[2])
	}
	return lerpRGB(snowRGB, waterRGB, stage, maxMistakes)
}

// healthColor goes from green at full health to red at zero.
func healthColor(health, maxHealth int) tcell.Color {
	if maxHealth <= 0 {
		return tcell.ColorRed
	}
	return lerpRGB([3]int32{60, 220, 90}, [3]int32{230, 50, 50}, maxHealth-health, maxHealth)
}

func lerpRGB(from, to [3]int32, step, steps int) tcell.Color {
	step = min(max(step, 0), steps)
	var c [3]int32
	for i := range c {
		c[i] = from[i] + (to[i]-from[i])*int32(step)/int32(steps)
	}
	return tcell.NewRGBColor(c[0], c[1], c[2])
}
