package tesseract4d

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save a PNG sequence instead of (or along with) the GIF
	NoGIF = false // set to true to skip the animated GIF
	// Compile time checks that the mesh consumers implement Sink
	_ Sink = (*Mesh)(nil)
	_ Sink = SinkFunc(nil)
)
