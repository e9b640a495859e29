package grid

// Direction enumerates the eight grid neighbors in clockwise order
// starting at North. The ordering is load-bearing: rotation is modular
// arithmetic over the constant values.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// numDirections is the modulus for rotation arithmetic.
const numDirections = 8

var directionNames = [numDirections]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// directionVectors holds the unit step per direction; y grows southward.
var directionVectors = [numDirections][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool {
	return d >= North && d < numDirections
}

// String returns the lowercase direction name, or "invalid" for values
// outside the enum.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// RotateCW rotates d by steps eighth-turns clockwise. Negative steps
// rotate counter-clockwise. Rotating an invalid direction returns d
// unchanged.
func (d Direction) RotateCW(steps int) Direction {
	if !d.Valid() {
		return d
	}
	n := (int(d) + steps) % numDirections
	if n < 0 {
		n += numDirections
	}
	return Direction(n)
}

// Opposite returns the direction rotated half a turn.
func (d Direction) Opposite() Direction {
	return d.RotateCW(numDirections / 2)
}

// Diagonal reports whether d is one of the four diagonal directions.
func (d Direction) Diagonal() bool {
	return d.Valid() && int(d)%2 == 1
}

// Vector returns the unit grid step for d; y grows southward. Invalid
// directions step nowhere.
func (d Direction) Vector() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	v := directionVectors[d]
	return v[0], v[1]
}

// DirectionFromVector maps the sign pair of a step back to its direction.
// The zero step and non-unit magnitudes report false.
func DirectionFromVector(dx, dy int) (Direction, bool) {
	for d := North; d < numDirections; d++ {
		v := directionVectors[d]
		if v[0] == dx && v[1] == dy {
			return d, true
		}
	}
	return North, false
}
