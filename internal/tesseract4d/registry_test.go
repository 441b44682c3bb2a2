package tesseract4d

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRegistry_RegisterTagsAndPushesInitialMesh(t *testing.T) {
	r := NewRegistry()
	if r.IsTesseract("cube") {
		t.Fatal("unregistered object reported as tesseract")
	}
	m := NewMesh("cube")
	s, err := r.Register("cube", m)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsTesseract("cube") || s.ID() != "cube" {
		t.Fatal("registration did not tag the object")
	}
	if s.Params() != DefaultParams() {
		t.Fatalf("not reset to defaults: %+v", s.Params())
	}
	if d := m.Snapshot(); len(d.Vertices) != VertexCount || len(d.Faces) != FaceCount {
		t.Fatalf("initial mesh missing: %d verts %d faces", len(d.Vertices), len(d.Faces))
	}
	got, err := r.Store("cube")
	if err != nil || got != s {
		t.Fatalf("Store lookup failed: %v", err)
	}
}

func TestRegistry_UnknownAndUnregister(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Store("nope"); !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("expected ErrUnknownObject, got %v", err)
	}
	if _, err := r.Register("b", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Register("a", nil); err != nil {
		t.Fatal(err)
	}
	if ids := r.IDs(); !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Fatalf("IDs: %v", ids)
	}
	if !r.Unregister("a") || r.Unregister("a") {
		t.Fatal("Unregister result wrong")
	}
	if r.IsTesseract("a") {
		t.Fatal("still tagged after Unregister")
	}
}

func TestRegistry_ReRegisterStartsOver(t *testing.T) {
	r := NewRegistry()
	s, _ := r.Register("obj", nil)
	if err := s.SetWShift(2); err != nil {
		t.Fatal(err)
	}
	s2, err := r.Register("obj", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Params().WShift != 0 {
		t.Fatalf("re-register kept parameters: %+v", s2.Params())
	}
}

func TestPanel(t *testing.T) {
	r := NewRegistry()
	if _, ok := Panel(r, "obj"); ok {
		t.Fatal("panel shown for untagged object")
	}
	s, _ := r.Register("obj", nil)
	if err := s.SetAngleYW(1.25); err != nil {
		t.Fatal(err)
	}
	rows, ok := Panel(r, "obj")
	if !ok {
		t.Fatal("panel hidden for tesseract")
	}
	if len(rows) != len(Properties)+1 || !rows[2].Separator {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	labels := []string{}
	for _, row := range rows {
		if !row.Separator {
			labels = append(labels, row.Label)
		}
	}
	if !reflect.DeepEqual(labels, []string{"Dist W", "Shift W", "Rot XW", "Rot YW", "Rot ZW"}) {
		t.Fatalf("labels: %v", labels)
	}
	if rows[0].Value != 3 || rows[4].Value != 1.25 {
		t.Fatalf("values: %+v", rows)
	}
	text := FormatPanel("Tesseract 4D Controls", rows)
	if !strings.Contains(text, "Dist W:") || !strings.Contains(text, "1.250") {
		t.Fatalf("panel text:\n%s", text)
	}
}

func TestProperties(t *testing.T) {
	p, ok := PropertyByName("viewer_distance")
	if !ok || p.Default != 3 || p.Min != 0.1 || p.Max != 20 {
		t.Fatalf("viewer_distance: %+v", p)
	}
	if _, ok := PropertyByName("angle_xy"); ok {
		t.Fatal("unknown property found")
	}
	var params Params
	for i, prop := range Properties {
		if err := params.Set(prop.Name, Real(i+1)); err != nil {
			t.Fatal(err)
		}
	}
	want := Params{ViewerDistance: 1, WShift: 2, Rot: Rot4W{XW: 3, YW: 4, ZW: 5}}
	if params != want {
		t.Fatalf("Set by name: %+v", params)
	}
	if v, err := params.Get("angle_zw"); err != nil || v != 5 {
		t.Fatalf("Get: %v %v", v, err)
	}
}

func TestHandleKeys(t *testing.T) {
	s := NewStore("obj", nil)
	pressed := map[rune]bool{'W': true, 'C': true, 'Z': true, 'X': true}
	changed, err := HandleKeys(s, func(r rune) bool { return pressed[r] })
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	p := s.Params()
	if p.Rot.XW != 0.02 || p.WShift != -0.05 || p.ViewerDistance != 3 {
		t.Fatalf("keys applied wrong: %+v", p)
	}
	changed, _ = HandleKeys(s, func(rune) bool { return false })
	if changed {
		t.Fatal("no keys but changed")
	}
	if help := HelpText(); !strings.Contains(help, "Q/W  Rot XW") {
		t.Fatalf("help:\n%s", help)
	}
}

func TestUpdateLogCache(t *testing.T) {
	// reset
	cache = &UpdateLogCache{total: make(map[string]int), updates: make(map[string][]UpdateLog)}
	s := NewStore("logged", nil)
	for k := 0; k < logKeep+10; k++ {
		if err := s.SetWShift(Real(k % 3)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SetWShift(2); err != nil {
		t.Fatal(err)
	}
	if cache.total["logged"] != logKeep+11 || len(cache.updates["logged"]) != logKeep {
		t.Fatalf("unexpected cache sizes: total=%d kept=%d", cache.total["logged"], len(cache.updates["logged"]))
	}
	last := cache.updates["logged"][logKeep-1]
	if last.Singular != 8 || !last.Finite {
		t.Fatalf("last log wrong: %+v", last)
	}
	updateStats()
}
