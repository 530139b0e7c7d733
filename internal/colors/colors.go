// Package colors hands out display color tokens from a fixed palette.
package colors

import (
	"math/rand"
	"time"
)

// Palette is the fixed set of wheel segment colors
var Palette = []string{
	"#F94144",
	"#F3722C",
	"#F8961E",
	"#F9C74F",
	"#90BE6D",
	"#43AA8B",
	"#4D908E",
	"#577590",
	"#277DA1",
	"#9B5DE5",
	"#F15BB5",
	"#00BBF9",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano()))

// Assign returns a palette color for display purposes. No uniqueness is
// guaranteed; segments may repeat colors.
func Assign() string {
	return Palette[random.Intn(len(Palette))]
}
