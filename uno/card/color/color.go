package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	ID() int
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	id            int
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) ID() int {
	return c.id
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction(text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	id:            0,
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow = &colorStruct{
	id:            1,
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green = &colorStruct{
	id:            2,
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	id:            3,
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

// None is the color of wild cards before a pick.
var None = &colorStruct{
	id:            4,
	name:          "none",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Stdout io.Writer = color.Output

var all = []Color{Red, Yellow, Green, Blue}

// All returns the four pickable colors in id order.
func All() []Color {
	colors := make([]Color, len(all))
	copy(colors, all)
	return colors
}

func ByID(id int) (Color, error) {
	if id < 0 || id >= len(all) {
		return nil, fmt.Errorf("invalid color id %d", id)
	}
	return all[id], nil
}

func ByName(name string) (Color, error) {
	for _, c := range all {
		if c.Name() == strings.ToLower(name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("invalid color '%s'", name)
}
