package game

// Config holds the runtime settings for one play session.
type Config struct {
	// Width and Height are the tile dimensions of generated levels.
	Width  int
	Height int

	// Seed for random number generation. Used for reproducible level
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64
}
