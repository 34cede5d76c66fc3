package trip

// dedupKey is the equality proxy for route comparison. Strategy is part of
// the key, so identical distance/duration under different strategies are
// kept as distinct routes. This is deliberately coarse: no geometric
// comparison is performed.
type dedupKey struct {
	distanceMeters int
	durationSecs   int
	strategy       string
}

// Deduplicate removes duplicate routes, preserving insertion order
// (strategy query order, then the provider's alternative order).
func Deduplicate(routes []Route) []Route {
	seen := make(map[dedupKey]struct{}, len(routes))
	unique := make([]Route, 0, len(routes))
	for _, r := range routes {
		key := dedupKey{
			distanceMeters: r.DistanceMeters,
			durationSecs:   r.DurationSecs,
			strategy:       r.Strategy,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// Renumber assigns 1-based contiguous route numbers in slice order.
// Numbers are stable only within a single planning call.
func Renumber(routes []Route) []Route {
	for i := range routes {
		routes[i].RouteNumber = i + 1
	}
	return routes
}
