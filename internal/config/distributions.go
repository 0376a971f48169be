package config

// Distribution names accepted in the distributions list, in plotting order.
const (
	DistCircle        = "circle"
	DistDisk          = "disk"
	DistRandom2       = "random2"
	DistRandom3       = "random3"
	DistSphere        = "sphere"
	DistHemisphere    = "hemisphere"
	DistCosHemisphere = "cos_hemisphere"
	DistCap           = "cap"
)

var Distributions = []string{
	DistCircle,
	DistDisk,
	DistRandom2,
	DistRandom3,
	DistSphere,
	DistHemisphere,
	DistCosHemisphere,
	DistCap,
}

// IsDistribution reports whether name is a known distribution
func IsDistribution(name string) bool {
	for _, d := range Distributions {
		if d == name {
			return true
		}
	}
	return false
}

// Is3D reports whether the named distribution produces 3D points
func Is3D(name string) bool {
	switch name {
	case DistCircle, DistDisk, DistRandom2:
		return false
	}
	return true
}
