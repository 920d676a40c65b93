package internal

import (
	"github.com/kelseyhightower/envconfig"
)

type Display struct {
	// PEOPLE_COLOURS enables colorized headers on the terminal
	Colours bool `envconfig:"PEOPLE_COLOURS" default:"true"`
	// PEOPLE_BORDER draws the table borders
	Border bool `envconfig:"PEOPLE_BORDER" default:"false"`
}

func LoadDisplay() (Display, error) {
	var display Display
	err := envconfig.Process("", &display)
	return display, err
}
