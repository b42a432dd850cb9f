/*
Package cprint provides cross-platform colored printing to the console.

The package exposes a small, fixed palette of colors that are known to render
consistently across common terminals, rather than the full ANSI matrix. Light
variants are preferred over the bold style because they are mostly equivalent
color-wise but additionally bold in some consoles. The background is always the
terminal default; changing it is intentionally not supported (as an example,
black looks black in one terminal and white in another).

# Basic Usage

	cprint.Println(cprint.Green, "operation succeeded")
	cprint.Printf(cprint.Red, "failed after %d attempts\n", attempts)

A print call emits the color sequence followed by the formatted arguments. The
style is not reset afterwards, matching terminal semantics: the next colored
print replaces it, printing with cprint.Default resets it, and Reset restores
the terminal default explicitly.

# Enabling and Disabling

Color output is decided once at package initialization: it is on when the
process is attached to a color-capable terminal, forced on when FORCE_COLOR is
set to anything but "0", and off when NO_COLOR is set (https://no-color.org).
Enable overrides the decision at runtime. When disabled, all print functions
degrade to plain fmt output with no escape codes.

# Palette Introspection

Every color knows its RGB value as verified against the ANSI escape code
tables, which makes the palette reusable outside the terminal:

	r, g, b, _ := cprint.Cyan.RGB()
	hex := cprint.Cyan.Hex() // "#00ffff"

The plot package uses exactly this to color chart series consistently with
console output.
*/
package cprint
