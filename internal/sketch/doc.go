// Package sketch reads window sketches: a one-window declaration of title,
// size and placement such as
//
//	window = "Main":
//		width = 50%
//		height = 300px
//		position = centered, 10%
//
// and resolves it against the rectangle of a screen.
//
// Attributes are separated by line breaks. Blanks, /* block */ and
// // line comments may appear anywhere a token may; a line break is never
// insignificant. Each attribute may be given once, and fullscreen excludes
// width, height and position.
//
// Every failure is reported as a single *Error carrying the position of the
// offending input.
package sketch
