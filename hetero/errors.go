package hetero

import "errors"

var (
	// ErrNilMultiplex indicates a nil multiplex argument; the wrapping
	// message names which of the two arguments failed.
	ErrNilMultiplex = errors.New("hetero: nil multiplex argument")

	// ErrEmptyRelations indicates a relation table with no rows.
	ErrEmptyRelations = errors.New("hetero: relation table must have at least one row")

	// ErrBadRelation indicates a relation row with a blank node name.
	ErrBadRelation = errors.New("hetero: relation row has a blank node name")

	// ErrBadWeight indicates a relation weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("hetero: relation weight is not finite")

	// ErrUnknownNode indicates a relation referencing a node not present in
	// its multiplex network's pool.
	ErrUnknownNode = errors.New("hetero: node not present in its multiplex network")
)
