package render

import (
	"bytes"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"os"
	"path/filepath"
)

const (
	MapFileName     = "navigation_map.html"
	PlotFileName    = "navigation_path.png"
	GeoJSONFileName = "navigation_path.geojson"
)

type Options struct {
	Map     bool
	Plot    bool
	GeoJSON bool
	MapOpts MapOptions
}

// View owns everything displayed for one navigation result: the report
// text and the files written for it. Paths stay valid for the View's lifetime.
type View struct {
	Dir    string
	Result *domain.NavigationResult
	Report string

	MapPath     string
	PlotPath    string
	GeoJSONPath string
}

func NewView(dir string, result *domain.NavigationResult) *View {
	return &View{Dir: dir, Result: result, Report: FormatResult(result)}
}

// Render writes the requested artifacts into the view's directory.
func (v *View) Render(opts Options) error {
	if v.Result == nil {
		return errors.New("render view: result is nil")
	}

	if err := os.MkdirAll(v.Dir, 0o755); err != nil {
		return fmt.Errorf("render view: create %q: %w", v.Dir, err)
	}

	r := v.Result

	if opts.Plot {
		var buf bytes.Buffer
		if err := WritePlot(&buf, []domain.GeoCoordinate{r.Current, r.Target}); err != nil {
			return fmt.Errorf("render view: %w", err)
		}
		p, err := v.write(PlotFileName, buf.Bytes())
		if err != nil {
			return err
		}
		v.PlotPath = p
	}

	if opts.Map {
		var buf bytes.Buffer
		if err := WriteMap(&buf, r.Current, r.Target, opts.MapOpts); err != nil {
			return fmt.Errorf("render view: %w", err)
		}
		p, err := v.write(MapFileName, buf.Bytes())
		if err != nil {
			return err
		}
		v.MapPath = p
	}

	if opts.GeoJSON {
		b, err := PathGeoJSON(r.Current, r.Target)
		if err != nil {
			return fmt.Errorf("render view: %w", err)
		}
		p, err := v.write(GeoJSONFileName, b)
		if err != nil {
			return err
		}
		v.GeoJSONPath = p
	}

	return nil
}

// OpenMap shows the rendered map in the default browser.
func (v *View) OpenMap() error {
	if v.MapPath == "" {
		return errors.New("open map: map was not rendered")
	}
	return OpenInBrowser(v.MapPath)
}

func (v *View) write(name string, b []byte) (string, error) {
	p := filepath.Join(v.Dir, name)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return "", fmt.Errorf("render view: write %q: %w", p, err)
	}
	return p, nil
}
