package vessel

// NozzleDims holds the build dimensions for one nominal bore, mm.
type NozzleDims struct {
	Bore      float32 // nominal bore
	OD        float32 // neck outside diameter
	Wall      float32 // neck wall thickness
	FlangeOD  float32
	FlangeThk float32
	Standoff  float32 // neck length from shell to flange face
}

// boreCatalog is the nominal bore table, ordered by bore. Dimensions follow
// common DN pipe and welding-neck flange proportions.
var boreCatalog = []NozzleDims{
	{Bore: 50, OD: 60.3, Wall: 3.9, FlangeOD: 165, FlangeThk: 18, Standoff: 150},
	{Bore: 80, OD: 88.9, Wall: 5.5, FlangeOD: 200, FlangeThk: 20, Standoff: 150},
	{Bore: 100, OD: 114.3, Wall: 6.0, FlangeOD: 220, FlangeThk: 20, Standoff: 160},
	{Bore: 150, OD: 168.3, Wall: 7.1, FlangeOD: 285, FlangeThk: 22, Standoff: 170},
	{Bore: 200, OD: 219.1, Wall: 8.2, FlangeOD: 340, FlangeThk: 24, Standoff: 180},
	{Bore: 250, OD: 273.0, Wall: 9.3, FlangeOD: 405, FlangeThk: 26, Standoff: 190},
	{Bore: 300, OD: 323.9, Wall: 10.3, FlangeOD: 460, FlangeThk: 28, Standoff: 200},
	{Bore: 400, OD: 406.4, Wall: 12.7, FlangeOD: 580, FlangeThk: 32, Standoff: 220},
	{Bore: 500, OD: 508.0, Wall: 15.1, FlangeOD: 715, FlangeThk: 36, Standoff: 240},
	{Bore: 600, OD: 610.0, Wall: 17.5, FlangeOD: 840, FlangeThk: 40, Standoff: 260},
}

// NearestBore returns the catalog entry closest to the requested nominal
// bore. A request that matches no entry exactly degrades silently to the
// nearest one; this is deliberate, not an error.
func NearestBore(bore float32) NozzleDims {
	best := boreCatalog[0]
	bestDist := absf(bore - best.Bore)
	for _, d := range boreCatalog[1:] {
		if dist := absf(bore - d.Bore); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
