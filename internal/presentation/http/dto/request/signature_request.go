package request

// SignatureEventRequest is a single pointer event captured on the
// client's signature surface, in display coordinates.
type SignatureEventRequest struct {
	Kind string  `json:"kind" binding:"required"` // down, move, up, leave
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// SignatureEventsRequest is a batch of pointer events together with the
// dimensions of the surface they were sampled on.
type SignatureEventsRequest struct {
	DisplayWidth  float64                 `json:"display_width" binding:"required"`
	DisplayHeight float64                 `json:"display_height" binding:"required"`
	Events        []SignatureEventRequest `json:"events" binding:"required"`
}
