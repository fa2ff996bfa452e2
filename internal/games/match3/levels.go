package match3

// Level defines a classic mode level: reach Target points within Moves swaps.
type Level struct {
	ID        int
	Name      string
	Target    int // Points to score within this level
	Moves     int // Accepted swaps available
	ItemTypes int // Distinct item types; 0 keeps the configured count
}

// Levels defines the classic mode levels with increasing difficulty.
// More item types make runs rarer, so targets grow slower than the type count.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 400, Moves: 20, ItemTypes: 4},
	{ID: 2, Name: "Getting Started", Target: 600, Moves: 20, ItemTypes: 5},
	{ID: 3, Name: "Building Momentum", Target: 900, Moves: 25, ItemTypes: 5},
	{ID: 4, Name: "Full Palette", Target: 1200, Moves: 25, ItemTypes: 6},
	{ID: 5, Name: "Crowded Board", Target: 1600, Moves: 30, ItemTypes: 6},
	{ID: 6, Name: "Seven Colors", Target: 2000, Moves: 35, ItemTypes: 7},
	{ID: 7, Name: "Grandmaster", Target: 2500, Moves: 40, ItemTypes: 7},
}

// LevelCount returns the number of classic levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}
