package planner

import "math"

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points given in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RouteKm sums the straight-line distance between consecutive locations in
// the order the plan lists them. Fewer than two locations yields 0.
func (p TravelPlan) RouteKm() float64 {
	var total float64
	for i := 1; i < len(p.Locations); i++ {
		a, b := p.Locations[i-1], p.Locations[i]
		total += haversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	}
	return total
}
