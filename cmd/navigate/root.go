package main

import (
	"errors"
	"fmt"
	"navigation-service/internal/app"
	"navigation-service/internal/config"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/render"
	"navigation-service/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Values used by --example.
const (
	exampleAngle1 = 45.0
	exampleAngle2 = 30.0
	exampleLat    = 18.054431
	exampleLon    = 79.537703
)

type options struct {
	angle1, angle2 float64
	lat, lon       float64
	place          string
	example        bool

	configPath string
	method     string

	out       string
	noPlot    bool
	noMap     bool
	noOpen    bool
	geojson   bool
	fitBounds bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Evaluate a two-link arm and the distance to a geographic target",
		Long: `navigate computes the Jacobian and end-effector position of a planar
two-link arm for the given joint angles, then measures the distance from the
current location to the target and renders a map and a path plot.`,
		Example: `  navigate --example
  navigate --angle1 45 --angle2 30 --lat 18.054431 --lon 79.537703
  navigate --angle1 10 --angle2 -20 --place "KITSW ECE block" --no-open`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &inputError{err: err}
	})

	f := cmd.Flags()
	f.Float64Var(&opts.angle1, "angle1", 0, "joint angle 1 in degrees [-180, 180]")
	f.Float64Var(&opts.angle2, "angle2", 0, "joint angle 2 in degrees [-180, 180]")
	f.Float64Var(&opts.lat, "lat", 0, "target latitude in degrees [-90, 90]")
	f.Float64Var(&opts.lon, "lon", 0, "target longitude in degrees [-180, 180]")
	f.StringVar(&opts.place, "place", "", "target place name, resolved instead of --lat/--lon")
	f.BoolVar(&opts.example, "example", false, "use the example inputs for any value not given")

	f.StringVar(&opts.configPath, "config", "", "YAML config file (default $CONFIG_PATH)")
	f.StringVar(&opts.method, "method", "", "distance method: geodesic, greatcircle or road")

	f.StringVar(&opts.out, "out", "", "output directory for the map and plot (default $OUTPUT_DIR)")
	f.BoolVar(&opts.noPlot, "no-plot", false, "skip the path plot")
	f.BoolVar(&opts.noMap, "no-map", false, "skip the HTML map")
	f.BoolVar(&opts.noOpen, "no-open", false, "do not open the map in a browser")
	f.BoolVar(&opts.geojson, "geojson", false, "also write the path as GeoJSON")
	f.BoolVar(&opts.fitBounds, "fit-bounds", false, "zoom the map to show both markers")

	return cmd
}

func (o *options) request(cmd *cobra.Command) (services.NavigateRequest, error) {
	flags := cmd.Flags()

	if o.example {
		fill := func(name string, dst *float64, v float64) {
			if !flags.Changed(name) {
				*dst = v
			}
		}
		fill("angle1", &o.angle1, exampleAngle1)
		fill("angle2", &o.angle2, exampleAngle2)
		if o.place == "" {
			fill("lat", &o.lat, exampleLat)
			fill("lon", &o.lon, exampleLon)
		}
	} else {
		for _, name := range []string{"angle1", "angle2"} {
			if !flags.Changed(name) {
				return services.NavigateRequest{}, &inputError{err: fmt.Errorf("--%s is required (or use --example)", name)}
			}
		}
		if o.place == "" && (!flags.Changed("lat") || !flags.Changed("lon")) {
			return services.NavigateRequest{}, &inputError{err: errors.New("--lat and --lon are required unless --place is given")}
		}
	}

	return services.NavigateRequest{
		Angle1Deg:   o.angle1,
		Angle2Deg:   o.angle2,
		TargetLat:   o.lat,
		TargetLon:   o.lon,
		TargetPlace: o.place,
	}, nil
}

func run(cmd *cobra.Command, opts *options) error {
	req, err := opts.request(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer obs.SetLogger(logger)()
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()

	providers, err := app.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer providers.Close()

	res, err := providers.Navigator().Navigate(ctx, req)
	if err != nil {
		return err
	}

	view := render.NewView(cfg.OutputDir, res)
	fmt.Fprintln(cmd.OutOrStdout(), view.Report)

	err = view.Render(render.Options{
		Map:     !opts.noMap,
		Plot:    !opts.noPlot,
		GeoJSON: opts.geojson,
		MapOpts: render.MapOptions{Zoom: render.DefaultZoom, FitBounds: opts.fitBounds},
	})
	if err != nil {
		return err
	}

	for _, p := range []string{view.PlotPath, view.MapPath, view.GeoJSONPath} {
		if p != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
		}
	}

	if view.MapPath != "" && !opts.noOpen {
		if err := view.OpenMap(); err != nil {
			logger.Warn("open map in browser", zap.String("path", view.MapPath), zap.Error(err))
		}
	}

	return nil
}

// loadConfig applies command-line overrides on top of file and environment
// configuration, then validates the result.
func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	// Keep the report readable unless a level was asked for.
	if config.Get("LOG_LEVEL", "") == "" {
		cfg.LogLevel = "warn"
	}
	if opts.method != "" {
		cfg.DistanceMethod = opts.method
	}
	if opts.out != "" {
		cfg.OutputDir = opts.out
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
