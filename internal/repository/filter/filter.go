package filter

// Where is a single field condition applied to a collection query.
type Where struct {
	Path  string
	Op    string
	Value interface{}
}
