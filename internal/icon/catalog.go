package icon

import (
	"fmt"

	"github.com/robertgumeny/icongen/internal/templates"
)

// Names is the fixed icon set in emission order.
var Names = []string{
	"play",
	"stop",
	"nmea",
	"basic",
	"message",
	"satellite",
	"snr",
	"save",
	"clear",
	"refresh",
}

// Catalog returns an IconSpec for every entry in Names, in order, with its
// markup loaded from the embedded shape templates and the default size.
func Catalog() ([]IconSpec, error) {
	specs := make([]IconSpec, 0, len(Names))
	for _, name := range Names {
		markup, err := templates.Shape(name)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		specs = append(specs, IconSpec{Name: name, Markup: markup, Size: DefaultSize})
	}
	return specs, nil
}
