package regobs

import "errors"

var (
	// ErrNoObservation is returned when an observation is constructed
	// without any meaningful content, or when a registration without
	// observations is submitted.
	ErrNoObservation = errors.New("no content in observation")

	// ErrTooManyProblems is returned when a fourth avalanche problem
	// is added to a registration.
	ErrTooManyProblems = errors.New("too many avalanche problems")

	// ErrInvalidRange is returned when a field value falls outside its
	// domain range.
	ErrInvalidRange = errors.New("value out of range")

	// ErrInvalidLatitude is returned when a latitude is outside -90..90.
	ErrInvalidLatitude = errors.New("latitude out of range")

	// ErrInvalidLongitude is returned when a longitude is outside -180..180.
	ErrInvalidLongitude = errors.New("longitude out of range")

	// ErrInvalidElevation is returned for elevations outside 0..4808
	// m.a.s.l. or elevation band arguments that do not fit the format.
	ErrInvalidElevation = errors.New("invalid elevation band")

	// ErrInvalidExpositions is returned when an exposition string is
	// longer than eight characters.
	ErrInvalidExpositions = errors.New("exposition string too long")

	// ErrNotAuthenticated is returned when a Connection is used before
	// Authenticate has succeeded.
	ErrNotAuthenticated = errors.New("connection not authenticated")

	// ErrAPI wraps non-200 responses from the observation service.
	ErrAPI = errors.New("api error")

	// ErrNotAnImage is returned when an attachment path does not look
	// like an image file.
	ErrNotAnImage = errors.New("file is not an image")
)
