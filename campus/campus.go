// Package campus ships the reference dataset of the navigator: thirteen named
// campus locations joined by 25 symmetric roads with integer weights 2–6.
//
// There is no package-level graph. Every call to Graph or Load builds a new,
// caller-owned *core.Graph from the embedded document.
package campus

import (
	_ "embed"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/graphio"
)

// Location names of the reference dataset.
const (
	FrontGate      = "Front Gate"
	Admin          = "Admin"
	Library        = "Library"
	Hostel         = "Hostel"
	Canteen        = "Canteen"
	Lab            = "Lab"
	Ground         = "Ground"
	SportsComplex  = "Sports Complex"
	Auditorium     = "Auditorium"
	CulturalCenter = "Cultural Center"
	Parking        = "Parking"
	ResearchBlock  = "Research Block"
	BackGate       = "Back Gate"
)

//go:embed campus.yaml
var document []byte

// Document returns the raw YAML of the reference dataset.
func Document() []byte {
	out := make([]byte, len(document))
	copy(out, document)

	return out
}

// Load builds a fresh reference graph.
func Load() (*core.Graph, error) {
	return graphio.Parse(document)
}

// Graph is Load for callers that treat the embedded data as known-good.
// It panics if the embedded document is invalid.
func Graph() *core.Graph {
	g, err := Load()
	if err != nil {
		panic("campus: embedded dataset is invalid: " + err.Error())
	}

	return g
}
