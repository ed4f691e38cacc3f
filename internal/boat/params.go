package boat

// Params tunes the boat model. Speeds are world units per second.
type Params struct {
	MaxSpeed          float64
	Acceleration      float64
	BrakeDeceleration float64
	SailTargetRate    float64 // Sail target change per second while commanded
	SailLevelRate     float64 // Maximum sail level change per second
	TurnRate          float64 // Radians per second at full authority
	MinTurnAuthority  float64 // Turn authority floor at low speed
	IdleBeforeAnchor  float64 // Seconds of idling before the anchor drops
	BounceSpeed       float64 // Speed ceiling after hitting land
	RestSpeed         float64 // Below this the boat counts as stopped
	RestSail          float64 // Below this the sail counts as furled
	EdgeTolerance     float64 // Coastline proximity treated as contact
	HullLength        float64
	HullBeam          float64
}

// DefaultParams returns the stock sloop.
func DefaultParams() Params {
	return Params{
		MaxSpeed:          120,
		Acceleration:      28,
		BrakeDeceleration: 64,
		SailTargetRate:    0.9,
		SailLevelRate:     0.5,
		TurnRate:          1.9,
		MinTurnAuthority:  0.35,
		IdleBeforeAnchor:  1.5,
		BounceSpeed:       12,
		RestSpeed:         0.5,
		RestSail:          0.01,
		EdgeTolerance:     3,
		HullLength:        26,
		HullBeam:          10,
	}
}
