package models

import "math/rand"

// Colors is the palette a project color must come from. Keys are the tokens
// stored on the project, values are the hex shown by the UI.
var Colors = map[string]string{
	"red":    "#fa5252",
	"pink":   "#e64980",
	"grape":  "#be4bdb",
	"violet": "#7950f2",
	"indigo": "#4c6ef5",
	"blue":   "#228be6",
	"cyan":   "#15aabf",
	"teal":   "#12b886",
	"green":  "#40c057",
	"lime":   "#82c91e",
	"yellow": "#fab005",
	"orange": "#fd7e14",
}

// ProjectImages are the display images a new project is assigned from.
var ProjectImages = []string{
	"/static/images/projects/project-1.svg",
	"/static/images/projects/project-2.svg",
	"/static/images/projects/project-3.svg",
	"/static/images/projects/project-4.svg",
	"/static/images/projects/project-5.svg",
	"/static/images/projects/project-6.svg",
}

func RandomProjectImage() string {
	return ProjectImages[rand.Intn(len(ProjectImages))]
}

func RandomColor() string {
	keys := make([]string, 0, len(Colors))
	for k := range Colors {
		keys = append(keys, k)
	}
	return keys[rand.Intn(len(keys))]
}
