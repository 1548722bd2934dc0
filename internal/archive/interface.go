package archive

// Archiver defines the contract for analysis archive backends
type Archiver interface {
	Store(name string, data []byte) error
	Retrieve(name string) ([]byte, error)
	List(prefix string) ([]string, error)
	Delete(name string) error
}
