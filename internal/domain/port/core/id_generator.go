package core

// IDGenerator issues identifiers for new records
type IDGenerator interface {
	NewID() string
}
