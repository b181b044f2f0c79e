package gen

// Command is one row of the driving table: the name to emit at pyplot level
// and the Axes method it forwards to.
type Command struct {
	Name     string
	RealName string
}

// Real returns the Axes method name, which defaults to the public name.
func (c Command) Real() string {
	if c.RealName == "" {
		return c.Name
	}

	return c.RealName
}

// Config holds the fixed tables driving generation. Instances are treated
// as immutable for the lifetime of a Generator.
type Config struct {
	// Commands is the ordered list of wrappers to emit.
	Commands []Command
	// Mappable maps a public name to the statement that registers the
	// wrapped call's result as the current mappable.
	Mappable map[string]string
	// Cmaps is the ordered list of colormap names to emit setters for.
	Cmaps []string
	// SentinelAliases maps a sentinel default name to the short dotted
	// name it is conventionally imported under.
	SentinelAliases map[string]string
	// Reserved are helper names the generated module depends on; a
	// forwarded parameter may not shadow them.
	Reserved []string
}

// DefaultConfig returns the tables for the stock pyplot module.
func DefaultConfig() Config {
	return Config{
		// These are all simple wrappers of Axes methods by the same name,
		// except for the renamed entries at the end.
		Commands: []Command{
			{Name: "acorr"},
			{Name: "angle_spectrum"},
			{Name: "annotate"},
			{Name: "arrow"},
			{Name: "autoscale"},
			{Name: "axhline"},
			{Name: "axhspan"},
			{Name: "axis"},
			{Name: "axvline"},
			{Name: "axvspan"},
			{Name: "bar"},
			{Name: "barbs"},
			{Name: "barh"},
			{Name: "boxplot"},
			{Name: "broken_barh"},
			{Name: "cla"},
			{Name: "clabel"},
			{Name: "cohere"},
			{Name: "contour"},
			{Name: "contourf"},
			{Name: "csd"},
			{Name: "errorbar"},
			{Name: "eventplot"},
			{Name: "fill"},
			{Name: "fill_between"},
			{Name: "fill_betweenx"},
			{Name: "grid"},
			{Name: "hexbin"},
			{Name: "hist"},
			{Name: "hist2d"},
			{Name: "hlines"},
			{Name: "imshow"},
			{Name: "legend"},
			{Name: "locator_params"},
			{Name: "loglog"},
			{Name: "magnitude_spectrum"},
			{Name: "margins"},
			{Name: "minorticks_off"},
			{Name: "minorticks_on"},
			{Name: "pcolor"},
			{Name: "pcolormesh"},
			{Name: "phase_spectrum"},
			{Name: "pie"},
			{Name: "plot"},
			{Name: "plot_date"},
			{Name: "psd"},
			{Name: "quiver"},
			{Name: "quiverkey"},
			{Name: "scatter"},
			{Name: "semilogx"},
			{Name: "semilogy"},
			{Name: "specgram"},
			{Name: "spy"},
			{Name: "stackplot"},
			{Name: "stem"},
			{Name: "step"},
			{Name: "streamplot"},
			{Name: "table"},
			{Name: "text"},
			{Name: "tick_params"},
			{Name: "ticklabel_format"},
			{Name: "tricontour"},
			{Name: "tricontourf"},
			{Name: "tripcolor"},
			{Name: "triplot"},
			{Name: "violinplot"},
			{Name: "vlines"},
			{Name: "xcorr"},
			{Name: "sci", RealName: "_sci"},
			{Name: "title", RealName: "set_title"},
			{Name: "xlabel", RealName: "set_xlabel"},
			{Name: "ylabel", RealName: "set_ylabel"},
			{Name: "xscale", RealName: "set_xscale"},
			{Name: "yscale", RealName: "set_yscale"},
		},
		// For these commands, an additional line is emitted to register
		// the result as the current mappable.
		Mappable: map[string]string{
			"contour":     "if __ret._A is not None: sci(__ret)",
			"contourf":    "if __ret._A is not None: sci(__ret)",
			"hexbin":      "sci(__ret)",
			"scatter":     "sci(__ret)",
			"pcolor":      "sci(__ret)",
			"pcolormesh":  "sci(__ret)",
			"hist2d":      "sci(__ret[-1])",
			"imshow":      "sci(__ret)",
			"spy":         "if isinstance(__ret, cm.ScalarMappable): sci(__ret)",
			"quiver":      "sci(__ret)",
			"specgram":    "sci(__ret[-1])",
			"streamplot":  "sci(__ret.lines)",
			"tricontour":  "if __ret._A is not None: sci(__ret)",
			"tricontourf": "if __ret._A is not None: sci(__ret)",
			"tripcolor":   "sci(__ret)",
		},
		Cmaps: []string{
			"autumn",
			"bone",
			"cool",
			"copper",
			"flag",
			"gray",
			"hot",
			"hsv",
			"jet",
			"pink",
			"prism",
			"spring",
			"summer",
			"winter",
			"magma",
			"inferno",
			"plasma",
			"viridis",
			"nipy_spectral",
		},
		// Callables used as defaults whose generic representation would be
		// unreadable; they render as the names they are imported under.
		SentinelAliases: map[string]string{
			"detrend_none":   "mlab.detrend_none",
			"window_hanning": "mlab.window_hanning",
			"mean":           "np.mean",
		},
		Reserved: []string{"gca", "gci", "__ret"},
	}
}
