package tesseract4d

import (
	"fmt"
	"math"
)

// Property describes one user-facing parameter. Min and Max are UI hints, not limits.
type Property struct {
	Name    string
	Label   string
	Default Real
	Min     Real
	Max     Real
}

// Properties lists the parameters in panel order.
var Properties = []Property{
	{"viewer_distance", "Dist W", DefaultViewerDistance, MinViewerDistance, 20.0},
	{"w_shift", "Shift W", DefaultWShift, -10.0, 10.0},
	{"angle_xw", "Rot XW", 0, -6.28, 6.28},
	{"angle_yw", "Rot YW", 0, -6.28, 6.28},
	{"angle_zw", "Rot ZW", 0, -6.28, 6.28},
}

// PropertyByName returns the descriptor for name.
func PropertyByName(name string) (Property, bool) {
	for _, p := range Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

func (p *Params) field(name string) (*Real, error) {
	switch name {
	case "viewer_distance":
		return &p.ViewerDistance, nil
	case "w_shift":
		return &p.WShift, nil
	case "angle_xw":
		return &p.Rot.XW, nil
	case "angle_yw":
		return &p.Rot.YW, nil
	case "angle_zw":
		return &p.Rot.ZW, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// Get returns the named parameter.
func (p Params) Get(name string) (Real, error) {
	f, err := p.field(name)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// Set assigns the named parameter without any validation.
func (p *Params) Set(name string, v Real) error {
	f, err := p.field(name)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// sanitize rejects non-finite values and clamps a non-positive viewer distance, which has no
// meaning as a camera position.
func (p *Params) sanitize() error {
	for _, prop := range Properties {
		v, _ := p.Get(prop.Name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParam, prop.Name, v)
		}
	}
	if p.ViewerDistance <= 0 {
		DebugLog("viewer_distance %.6g clamped to %.6g", p.ViewerDistance, MinViewerDistance)
		p.ViewerDistance = MinViewerDistance
	}
	return nil
}
