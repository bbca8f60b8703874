// Package render draws a 2D preview of a generated city model. The preview
// is a diagnostic aid, separate from the exporter's artifact contract.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/il-an/city-generator/pkg/layout"
)

// Palette defines how parcel roles and network features are coloured.
type Palette struct {
	Background  color.Color
	Residential color.Color
	Commercial  color.Color
	Industrial  color.Color
	Green       color.Color
	Road        color.Color
	Hospital    color.Color
	School      color.Color
	Stop        color.Color
}

// DefaultPalette returns a reasonable default colour scheme.
func DefaultPalette() *Palette {
	return &Palette{
		Background:  colornames.Whitesmoke,
		Residential: colornames.Steelblue,
		Commercial:  colornames.Hotpink,
		Industrial:  colornames.Peru,
		Green:       colornames.Lightgreen,
		Road:        colornames.Dimgray,
		Hospital:    colornames.Crimson,
		School:      colornames.Gold,
		Stop:        colornames.Black,
	}
}

func (p *Palette) roleColor(role layout.Role) color.Color {
	switch role {
	case layout.RoleResidential:
		return p.Residential
	case layout.RoleCommercial:
		return p.Commercial
	case layout.RoleIndustrial:
		return p.Industrial
	case layout.RoleGreen:
		return p.Green
	case layout.RoleRoad:
		return p.Road
	case layout.RoleHospital:
		return p.Hospital
	case layout.RoleSchool:
		return p.School
	}
	return p.Background
}

// Preview rasterizes the model at cellPx pixels per grid cell.
func Preview(m *layout.CityModel, cellPx int, p *Palette) image.Image {
	if p == nil {
		p = DefaultPalette()
	}
	side := m.GridSize * cellPx
	dc := gg.NewContext(side, side)
	dc.SetColor(p.Background)
	dc.Clear()

	px := float64(cellPx)

	for _, parcel := range m.Parcels {
		dc.SetColor(p.roleColor(parcel.Role))
		dc.DrawRectangle(float64(parcel.Cell.X)*px, float64(parcel.Cell.Y)*px, px, px)
		dc.Fill()
	}

	// Road centrelines over the parcel fill.
	dc.SetColor(p.Road)
	dc.SetLineWidth(px * 0.4)
	for _, r := range m.Roads {
		dc.DrawLine(r.X1*px, r.Y1*px, r.X2*px, r.Y2*px)
		dc.Stroke()
	}

	// Amenity markers.
	for _, h := range m.Hospitals {
		dc.SetColor(p.Hospital)
		dc.DrawCircle((float64(h.Cell.X)+0.5)*px, (float64(h.Cell.Y)+0.5)*px, px*0.45)
		dc.Fill()
	}
	for _, s := range m.Schools {
		dc.SetColor(p.School)
		dc.DrawCircle((float64(s.Cell.X)+0.5)*px, (float64(s.Cell.Y)+0.5)*px, px*0.45)
		dc.Fill()
	}

	// Transit stops.
	for _, stop := range m.Network.Stops {
		dc.SetColor(p.Stop)
		dc.DrawCircle((float64(stop.X)+0.5)*px, (float64(stop.Y)+0.5)*px, px*0.2)
		dc.Fill()
	}

	return dc.Image()
}

// SavePNG renders the model and writes it as a PNG file.
func SavePNG(path string, m *layout.CityModel, cellPx int, p *Palette) error {
	if cellPx < 1 {
		return fmt.Errorf("cell size must be at least 1 pixel, got %d", cellPx)
	}
	return gg.SavePNG(path, Preview(m, cellPx, p))
}
