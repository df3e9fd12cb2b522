package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"desktop-utils/src/clipboard"
	"desktop-utils/src/config"
	"desktop-utils/src/display"
	"desktop-utils/src/dpi"
	"desktop-utils/src/loader"
	"desktop-utils/src/resources"
	"desktop-utils/src/winapi"
)

type cliOptions struct {
	jsonOutput bool
	verbose    bool
	copy       bool
	module     string

	hwnd     string
	procs    []string
	resType  string
	outPath  string
	scaleDPI uint16

	cfg *config.Config

	// enableAwareness raises process DPI awareness before window queries.
	enableAwareness func(dpi.Awareness) dpi.Awareness
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return runWithArgs(normalizeLegacyArgs(os.Args))
}

func runWithArgs(args []string) error {
	if len(args) == 0 {
		args = []string{"desktop-utils"}
	}

	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	if opts.enableAwareness == nil {
		opts.enableAwareness = dpi.EnableAwareness
	}

	cmd := &cobra.Command{
		Use:           "desktop-utils",
		Short:         "Inspect DPI, system libraries and embedded resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output to stderr")
	cmd.PersistentFlags().BoolVar(&opts.copy, "copy", false, "Copy the result to the clipboard")
	cmd.PersistentFlags().StringVar(&opts.module, "module", "", "Module to read resources from (default: this executable)")

	cmd.AddCommand(
		newDPICmd(opts),
		newLoadCmd(opts),
		newStringCmd(opts),
		newImageCmd(opts),
		newDisplaysCmd(opts),
		newAwarenessCmd(opts),
	)

	return cmd
}

func setup(opts *cliOptions) error {
	// Configure logging BEFORE any other operations.
	if !opts.verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{ResourceModuleOverride: opts.module})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	opts.cfg = cfg
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "[verbose] Config loaded: module=%q image-type=%s awareness=%s\n",
			cfg.ResourceModule, cfg.ImageResourceType, cfg.DPIAwareness)
	}
	return nil
}

type dpiResult struct {
	HWND      string  `json:"hwnd"`
	DPI       uint16  `json:"dpi"`
	Factor    float64 `json:"scale"`
	Awareness string  `json:"awareness"`
}

func newDPICmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dpi",
		Short: "Print the effective DPI of a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// An unaware process sees virtualized 96 DPI on scaled displays.
			awareness := opts.enableAwareness(opts.cfg.DPIAwareness)
			hwnd := defaultWindow()
			if opts.hwnd != "" {
				h, err := parseHWND(opts.hwnd)
				if err != nil {
					return err
				}
				hwnd = h
			}
			value := dpi.ForWindow(hwnd)
			res := dpiResult{
				HWND:      fmt.Sprintf("%#x", uintptr(hwnd)),
				DPI:       value,
				Factor:    dpi.Factor(value),
				Awareness: awareness.String(),
			}
			return emit(cmd.OutOrStdout(), opts, res, strconv.Itoa(int(value)))
		},
	}
	cmd.Flags().StringVar(&opts.hwnd, "hwnd", "", "Window handle (decimal or 0x hex); defaults to the console window")
	return cmd
}

type loadResult struct {
	Name    string            `json:"name"`
	Handle  string            `json:"handle"`
	Exports map[string]string `json:"exports,omitempty"`
}

func newLoadCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load NAME",
		Short: "Load a system library from the system directory only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loader.Open(args[0])
			if err != nil {
				return err
			}
			defer lib.Close()

			res := loadResult{Name: lib.Name(), Handle: fmt.Sprintf("%#x", uintptr(lib.Handle()))}
			lines := []string{fmt.Sprintf("%s loaded at %s", res.Name, res.Handle)}
			for _, p := range opts.procs {
				if res.Exports == nil {
					res.Exports = map[string]string{}
				}
				c := lib.Lookup(p)
				if c.Ok() {
					res.Exports[p] = fmt.Sprintf("%#x", c.Addr())
				} else {
					res.Exports[p] = "absent"
				}
				lines = append(lines, fmt.Sprintf("  %s: %s", p, res.Exports[p]))
			}
			return emit(cmd.OutOrStdout(), opts, res, strings.Join(lines, "\n"))
		},
	}
	cmd.Flags().StringSliceVar(&opts.procs, "proc", nil, "Exported function to look up (repeatable)")
	return cmd
}

type stringResult struct {
	ID   uint32 `json:"id"`
	Text string `json:"text"`
}

func newStringCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "string ID",
		Short: "Print a string table resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			inst, release, err := resources.ModuleHandle(opts.cfg.ResourceModule)
			if err != nil {
				return err
			}
			defer release()

			text := resources.LoadString(inst, id)
			if text == "" {
				return fmt.Errorf("string resource %d not found", id)
			}
			return emit(cmd.OutOrStdout(), opts, stringResult{ID: id, Text: text}, text)
		},
	}
}

type imageResult struct {
	ID     uint32 `json:"id"`
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Output string `json:"output,omitempty"`
}

func newImageCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image ID",
		Short: "Decode an image resource, optionally scaled and written as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resType := opts.resType
			if resType == "" {
				resType = opts.cfg.ImageResourceType
			}
			inst, release, err := resources.ModuleHandle(opts.cfg.ResourceModule)
			if err != nil {
				return err
			}
			defer release()

			img, err := resources.LoadImage(inst, id, resType)
			if err != nil {
				return err
			}
			if opts.scaleDPI != 0 {
				img = dpi.ScaleImage(img, opts.scaleDPI)
			}

			res := imageResult{ID: id, Type: strings.ToUpper(resType), Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
			if opts.outPath != "" {
				f, err := os.Create(opts.outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", opts.outPath, err)
				}
				if err := png.Encode(f, img); err != nil {
					f.Close()
					return fmt.Errorf("failed to encode PNG output: %w", err)
				}
				if err := f.Close(); err != nil {
					return err
				}
				res.Output = opts.outPath
			}
			return emit(cmd.OutOrStdout(), opts, res, fmt.Sprintf("%s %d: %dx%d", res.Type, id, res.Width, res.Height))
		},
	}
	cmd.Flags().StringVar(&opts.resType, "type", "", "Resource type: PNG, BMP or WEBP (default from IMAGE_RESOURCE_TYPE)")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "Write the decoded image to this PNG file")
	cmd.Flags().Uint16Var(&opts.scaleDPI, "scale-dpi", 0, "Scale the image from 96 DPI to this DPI")
	return cmd
}

func newDisplaysCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "displays",
		Short: "List active displays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			monitors, err := display.List()
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), opts, monitors, strings.TrimRight(display.Describe(monitors), "\n"))
		},
	}
}

type awarenessResult struct {
	Requested string `json:"requested"`
	Effective string `json:"effective"`
}

func newAwarenessCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "awareness",
		Short: "Enable the configured DPI awareness and report the level that took effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			got := opts.enableAwareness(opts.cfg.DPIAwareness)
			res := awarenessResult{Requested: opts.cfg.DPIAwareness.String(), Effective: got.String()}
			return emit(cmd.OutOrStdout(), opts, res, res.Effective)
		},
	}
}

// emit writes v as JSON or text and copies the text form to the clipboard
// when requested.
func emit(w io.Writer, opts *cliOptions, v any, text string) error {
	if opts.jsonOutput {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	} else {
		fmt.Fprintln(w, text)
	}

	if opts.copy || (opts.cfg != nil && opts.cfg.CopyToClipboard) {
		if err := clipboard.Write(text); err != nil {
			return err
		}
	}
	return nil
}

func parseID(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid resource ID %q", s)
	}
	return uint32(v), nil
}

func parseHWND(s string) (winapi.HWND, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q", s)
	}
	return winapi.HWND(v), nil
}

var legacyFlags = []string{"json", "verbose", "copy", "module", "hwnd", "proc", "type", "out", "scale-dpi"}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		for _, name := range legacyFlags {
			switch {
			case arg == "-"+name:
				normalized[i] = "--" + name
			case strings.HasPrefix(arg, "-"+name+"="):
				normalized[i] = "--" + name + "=" + arg[len("-"+name+"="):]
			}
		}
	}

	return normalized
}
