package units

// Position is a snapshot of where something was at a moment: how far it had
// travelled and in which direction.
type Position struct {
	timestamp Time
	distance  Distance
	angle     Angle
}

func NewPosition(timestamp Time, distance Distance, angle Angle) Position {
	return Position{timestamp: timestamp, distance: distance, angle: angle}
}

func (p Position) Timestamp() Time    { return p.timestamp }
func (p Position) Distance() Distance { return p.distance }
func (p Position) Angle() Angle       { return p.angle }
