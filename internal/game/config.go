package game

// Config holds game configuration options.
type Config struct {
	// Seed for the deck shuffle. Games with the same seed deal identical hands.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}
