package main

// Argument counts per subcommand
const (
	createArgs  = 6
	applyArgs   = 3
	destroyArgs = 1
	infoArgs    = 1
)

// Output settings
const (
	filterFileMode = 0o644

	// Bit depth used when writing WAV output from a text input
	defaultWAVBitDepth = 16
)
