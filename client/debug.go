package client

// DebugState holds debug flags that persist across game resets
type DebugState struct {
	ShowColliders bool // Show collider circles and frame counters
}
