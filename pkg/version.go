package validador

var (
	// Version of the validador. It is overwritten at build time by
	// `-ldflags "-X github.com/Jeysshonb/Validador-nomina/pkg.Version=..."`.
	Version = "v0.1.0"
	// Build timestamp, set at build time the same way.
	Build = "n/a"
)
