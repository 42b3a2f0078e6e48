package googleroutes

// computeRoutes request body. Locations are addressed by raw string; address
// resolution is delegated entirely to the provider.
type computeRoutesRequest struct {
	Origin                waypoint   `json:"origin"`
	Destination           waypoint   `json:"destination"`
	Intermediates         []waypoint `json:"intermediates,omitempty"`
	TravelMode            string     `json:"travelMode"`
	OptimizeWaypointOrder bool       `json:"optimizeWaypointOrder,omitempty"`
}

type waypoint struct {
	Address string `json:"address"`
}

// computeRoutes response envelope. Only the fields named in the request
// field mask are populated.
type computeRoutesResponse struct {
	Routes []route `json:"routes"`
}

type route struct {
	OptimizedIntermediateWaypointIndex []int  `json:"optimizedIntermediateWaypointIndex"`
	Duration                           string `json:"duration"`
	DistanceMeters                     int64  `json:"distanceMeters"`
	Legs                               []leg  `json:"legs"`
}

type leg struct {
	DistanceMeters int64    `json:"distanceMeters"`
	Duration       string   `json:"duration"`
	StartLocation  location `json:"startLocation"`
	EndLocation    location `json:"endLocation"`
}

type location struct {
	LatLng *latLng `json:"latLng"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
