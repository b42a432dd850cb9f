/*
Package plot provides figure and subplot conveniences for rendering line
charts to PNG or SVG files.

A Figure holds one or more Subplots, each with its own title, axis labels and
line series. Figures are auto-numbered process-wide, so an untitled figure
becomes "Figure 0", "Figure 1" and so on.

	fig := plot.NewFigure(plot.WithTitle("Temperatures"))
	sub := fig.AddSubplot()
	sub.XLabel = "t [s]"
	sub.YLabel = "T [°C]"
	if err := sub.AddSeries("sensor 1", xs, ys); err != nil {
	    return err
	}
	path, err := fig.SavePNG("out/")

Rendering a figure with a single subplot produces one chart. Figures with
multiple subplots are composed into a vertical grid; because the grid is
stitched from rasterized subplots, SVG output is only available for
single-subplot figures.

Series colors come from the cprint palette or from the theme's color cycle.
Themes control canvas size, background and the palette, and can be loaded
from YAML files:

	width: 1024
	height: 512
	background: "#ffffff"
	palette: ["#0000ff", "#ff0000", "#00ff00"]
*/
package plot
