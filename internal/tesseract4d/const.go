package tesseract4d

const (
	VertexCount = 16
	FaceCount   = 24
	EdgeCount   = 32

	DefaultViewerDistance = 3.0
	DefaultWShift         = 0.0
	MinViewerDistance     = 0.1 // lower bound the store clamps viewer distance to

	// |viewerDistance - w| below SingularEps switches to the fixed SingularScale.
	SingularEps   = 0.001
	SingularScale = 1000.0

	// batch renderer defaults
	Frames      = 72
	ImageWidth  = 320
	ImageHeight = 320
	FOV         = 110.0 // pixels per unit at CamDistance
	CamDistance = 8.0
	GIFOut      = "tesseract.gif"
	GIFDelay    = 5 // 100ths of a second per frame
)
