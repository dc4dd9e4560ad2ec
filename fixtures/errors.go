package fixtures

import "errors"

// ErrTooFewVertices is returned when a constructor's vertex-count
// parameter falls below the minimum its topology requires.
var ErrTooFewVertices = errors.New("fixtures: too few vertices")

// ErrInvalidProbability is returned by RandomSparse when p is outside [0,1].
var ErrInvalidProbability = errors.New("fixtures: probability out of [0,1]")

// ErrInvalidDegree is returned by RandomRegular when d is outside [0,n) or
// n*d is odd (a d-regular simple graph on n vertices cannot exist).
var ErrInvalidDegree = errors.New("fixtures: invalid regular degree")

// ErrConstructFailed is returned by RandomRegular when stub-matching
// could not find a valid pairing within its bounded retry budget.
var ErrConstructFailed = errors.New("fixtures: construction failed after bounded retries")
