package storage

// Adapter mirrors the repository's in-memory state to durable local storage.
// It is a dumb full-snapshot mirror: Save overwrites the entire stored blob
// for a user in one write, and Load reads it back whole. A missing key is
// not an error; it loads as an empty snapshot.
type Adapter interface {
	Load(userID string) (Snapshot, error)
	Save(userID string, snap Snapshot) error
	Close() error
}
