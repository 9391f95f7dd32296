package world

import "github.com/Wintermark/overworld/internal/catalog"

// Latitude band boundaries: winter dominates above the 1/3 mark, drought
// below the 2/3 mark, summer fills the middle.
const (
	winterLimit  = 1.0 / 3.0
	droughtLimit = 2.0 / 3.0
)

// relevantWeight is the threshold below which a biome is ignored for terrain
// blending and palette merging.
const relevantWeight = 0.01

func smoothstep(edge0, edge1, value float64) float64 {
	if edge0 == edge1 {
		if value >= edge1 {
			return 1.0
		}
		return 0.0
	}
	t := (value - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3.0 - 2.0*t)
}

// normalizedHeight maps a global tile row to [0,1].
func normalizedHeight(row, totalRows int) float64 {
	if totalRows <= 1 {
		return 0.0
	}
	return float64(row) / float64(totalRows-1)
}

// BiomeWeights computes the three-way latitude split for a normalized
// vertical position. Transitions are smoothstep ramps whose width is
// transitionScreens screens out of worldRows. Weights are non-negative and
// sum to 1; when normalization degenerates the summer band takes weight 1.
func BiomeWeights(normalizedY float64, transitionScreens, worldRows int) map[catalog.BiomeID]float64 {
	span := transitionScreens
	if span < 1 {
		span = 1
	}
	if worldRows < 1 {
		worldRows = 1
	}
	halfBand := (float64(span) / float64(worldRows)) / 2.0

	winterFalloff := smoothstep(winterLimit-halfBand, winterLimit+halfBand, normalizedY)
	droughtRise := smoothstep(droughtLimit-halfBand, droughtLimit+halfBand, normalizedY)

	winter := 1.0 - winterFalloff
	drought := droughtRise
	summer := 1.0 - winter - drought
	if winter < 0 {
		winter = 0
	}
	if drought < 0 {
		drought = 0
	}
	if summer < 0 {
		summer = 0
	}

	total := winter + summer + drought
	if total <= 0 {
		return map[catalog.BiomeID]float64{catalog.BiomeSummer: 1.0}
	}

	return map[catalog.BiomeID]float64{
		catalog.BiomeWinter:  winter / total,
		catalog.BiomeSummer:  summer / total,
		catalog.BiomeDrought: drought / total,
	}
}
