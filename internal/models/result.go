package models

// Status describes what happened to a single input file.
type Status string

// File statuses, also used as metric labels.
const (
	StatusLocated    Status = "located"
	StatusNoGPS      Status = "no_gps"
	StatusNoMetadata Status = "no_metadata"
	StatusMissing    Status = "missing"
	StatusFailed     Status = "failed"
)

// FileResult associates an input path with the coordinates found in it.
type FileResult struct {
	Path        string       // Path as given on the command line.
	Coordinates *Coordinates // Coordinates is nil when the file has no usable GPS data.
	Status      Status       // Status of the metadata read.
}
