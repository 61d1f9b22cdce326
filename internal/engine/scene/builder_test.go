package scene

import (
	"image"
	gomath "math"
	"testing"

	"github.com/vesselworks/vesselview/internal/vessel"
)

func testVessel(o vessel.Orientation) vessel.Spec {
	return vessel.Spec{ID: 2000, Length: 6000, HeadRatio: 2, Orientation: o}
}

func buildSample(o vessel.Orientation, selected int64) *Scene {
	return Build(testVessel(o),
		[]vessel.NozzleSpec{{Pos: 3000, Angle: 90, Bore: 150}, {Pos: 1000, Angle: 0, Bore: 80}},
		[]vessel.LugSpec{{Pos: 2000, Angle: 45, Width: 300, Height: 250, Thick: 30}},
		[]vessel.SaddleSpec{{Pos: 1200}, {Pos: 4800}},
		[]vessel.DecalSpec{{ID: 11, Pos: 2500, Angle: 180, ScaleW: 1, ScaleH: 1}},
		map[int64]image.Image{11: image.NewRGBA(image.Rect(0, 0, 100, 100))},
		Options{SelectedDecal: selected},
	)
}

func TestBuildInteractiveLists(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)

	if len(s.ShellNodes) != 3 {
		t.Errorf("shell nodes = %d, want 3 (cylinder + two heads)", len(s.ShellNodes))
	}
	if len(s.NozzleNodes) != 2 {
		t.Fatalf("nozzle entries = %d, want 2", len(s.NozzleNodes))
	}
	if len(s.NozzleNodes[0]) != 2 {
		t.Errorf("nozzle 0 parts = %d, want 2 (neck + flange)", len(s.NozzleNodes[0]))
	}
	if len(s.LugNodes) != 1 || len(s.SaddleNodes) != 2 || len(s.DecalNodes) != 1 {
		t.Errorf("lists = %d lugs, %d saddles, %d decals; want 1, 2, 1",
			len(s.LugNodes), len(s.SaddleNodes), len(s.DecalNodes))
	}
}

func TestBuildTagsInSpecOrder(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)

	for i, parts := range s.NozzleNodes {
		for _, id := range parts {
			tag, ok := s.ResolveTag(id)
			if !ok {
				t.Fatalf("nozzle %d part %d has no resolvable tag", i, id)
			}
			if tag.Class != ClassNozzle || tag.Index != i {
				t.Errorf("nozzle %d part resolves to %+v", i, tag)
			}
		}
	}
	for i, id := range s.SaddleNodes {
		tag, ok := s.ResolveTag(id)
		if !ok || tag.Class != ClassSaddle || tag.Index != i {
			t.Errorf("saddle %d resolves to %+v ok=%v", i, tag, ok)
		}
	}
}

func TestResolveTagWalksToGroup(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)

	// Part nodes themselves carry no tag; resolution must come from the
	// parent group.
	partID := s.NozzleNodes[0][0]
	if _, direct := s.Tags[partID]; direct {
		t.Fatal("nozzle part should not be tagged directly")
	}
	tag, ok := s.ResolveTag(partID)
	if !ok || tag.Class != ClassNozzle || tag.Index != 0 {
		t.Errorf("part resolves to %+v ok=%v", tag, ok)
	}
}

func TestResolveTagMissing(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)
	if _, ok := s.ResolveTag(s.ShellNodes[0]); ok {
		t.Error("shell node should not resolve to an attachment tag")
	}
}

func TestVerticalVesselSkipsSaddles(t *testing.T) {
	s := buildSample(vessel.Vertical, -1)
	if len(s.SaddleNodes) != 0 {
		t.Errorf("vertical vessel built %d saddles, want 0", len(s.SaddleNodes))
	}
}

func TestHighlightOnlyWhenSelected(t *testing.T) {
	countHighlights := func(s *Scene) int {
		n := 0
		for _, node := range s.Nodes {
			if node.Kind == KindHighlight {
				n++
			}
		}
		return n
	}

	if n := countHighlights(buildSample(vessel.Horizontal, -1)); n != 0 {
		t.Errorf("unselected build has %d highlights, want 0", n)
	}
	if n := countHighlights(buildSample(vessel.Horizontal, 11)); n != 1 {
		t.Errorf("selected build has %d highlights, want 1", n)
	}
}

func TestShellMeshRadius(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)
	shell := s.Node(s.ShellNodes[0])
	for i, v := range shell.Mesh.Vertices {
		r := gomath.Hypot(float64(v.Position[1]), float64(v.Position[2]))
		if gomath.Abs(r-1000) > 0.01 {
			t.Fatalf("shell vertex %d at radius %v, want 1000", i, r)
		}
	}
}

func TestSaddleBelowShell(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)
	saddle := s.Node(s.SaddleNodes[0])
	if saddle.Mesh.Bounds.Max[1] > -1000+0.01 {
		t.Errorf("saddle top %v, want <= -1000", saddle.Mesh.Bounds.Max[1])
	}
	if got := SaddleRestHeight(testVessel(vessel.Horizontal)); got != -1000 {
		t.Errorf("SaddleRestHeight = %v, want -1000", got)
	}
}

func TestGroundGridPresent(t *testing.T) {
	s := buildSample(vessel.Horizontal, -1)
	found := false
	for _, n := range s.Nodes {
		if n.Kind == KindGround {
			found = true
			if len(n.Mesh.Indices) == 0 {
				t.Error("ground grid has no lines")
			}
		}
	}
	if !found {
		t.Error("no ground grid node")
	}
}
