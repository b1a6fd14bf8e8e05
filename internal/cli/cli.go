// Package cli defines the command-line surface of metamap.
package cli

import (
	"errors"

	"github.com/alecthomas/kong"
)

const description = "Extract GPS coordinates from image EXIF data and print a map link."

// ErrFullNeedsSingleImage is returned when --full is combined with more than one image.
var ErrFullNeedsSingleImage = errors.New("--full can only be used with a single image")

// Args holds the parsed command line.
type Args struct {
	Images   []string `arg:"" name:"image" help:"Path to the image file(s)."`
	Full     bool     `help:"Dump all metadata fields (single image only)."`
	NoBanner bool     `help:"Do not print the logo banner."`
	NoColor  bool     `help:"Disable colored output."`
}

// Parse parses args (without the program name). Extra kong options, such
// as kong.Writers or kong.Exit, are applied to the parser.
func Parse(args []string, options ...kong.Option) (*Args, error) {
	var parsed Args

	options = append([]kong.Option{
		kong.Name("metamap"),
		kong.Description(description),
	}, options...)

	parser, err := kong.New(&parsed, options...)
	if err != nil {
		return nil, err
	}

	if _, err = parser.Parse(args); err != nil {
		return nil, err
	}

	if parsed.Full && len(parsed.Images) != 1 {
		return nil, ErrFullNeedsSingleImage
	}

	return &parsed, nil
}
