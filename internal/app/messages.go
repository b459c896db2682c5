package app

import "time"

// TickMsg triggers one poll of the simulation.
type TickMsg time.Time
