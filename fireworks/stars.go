package fireworks

import "math"

// Star is a static twinkling backdrop point
type Star struct {
	Pos     Vec2
	Radius  float64
	Alpha   float64
	Flicker float64
	Phase   float64
}

// BuildStars scatters one star per area units of the surface over its upper 60%
func BuildStars(rng *Rand, width, height, area float64) []Star {
	if width <= 0 || height <= 0 || area <= 0 {
		return nil
	}
	count := int(math.Floor(width * height / area))
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, Star{
			Pos:     Vec2{X: rng.Range(0, width), Y: rng.Range(0, height*0.6)},
			Radius:  rng.Range(0.3, 1.6),
			Alpha:   rng.Range(0.02, 0.14),
			Flicker: rng.Range(0.001, 0.007),
			Phase:   rng.Range(0, 1000),
		})
	}
	return stars
}

// Twinkle advances the star's phase and returns its displayed opacity
func (s *Star) Twinkle() float64 {
	s.Phase += s.Flicker
	a := s.Alpha + math.Sin(s.Phase)*s.Alpha*0.6
	return clamp(a, 0.01, 0.9)
}
