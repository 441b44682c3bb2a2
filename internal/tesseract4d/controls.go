package tesseract4d

// Control binds a pair of letter keys to decrementing and incrementing one property.
type Control struct {
	Property string
	Dec, Inc rune // upper-case letters
	Step     Real // change per key repeat
}

// Controls are shared by the interactive viewers.
var Controls = []Control{
	{"viewer_distance", 'Z', 'X', 0.05},
	{"w_shift", 'C', 'V', 0.05},
	{"angle_xw", 'Q', 'W', 0.02},
	{"angle_yw", 'A', 'S', 0.02},
	{"angle_zw", 'D', 'F', 0.02},
}

// HandleKeys nudges the store for every pressed control key and reports whether anything
// changed. pressed is queried with upper-case letters. Failed updates leave the store as it was.
func HandleKeys(s *Store, pressed func(r rune) bool) (bool, error) {
	changed := false
	for _, c := range Controls {
		delta := 0.0
		if pressed(c.Dec) {
			delta -= c.Step
		}
		if pressed(c.Inc) {
			delta += c.Step
		}
		if delta == 0 {
			continue
		}
		if err := s.Nudge(c.Property, delta); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

// HelpText lists the key bindings, one per line.
func HelpText() string {
	out := ""
	for _, c := range Controls {
		p, _ := PropertyByName(c.Property)
		out += string(c.Dec) + "/" + string(c.Inc) + "  " + p.Label + "\n"
	}
	return out + "0  reset\n"
}
