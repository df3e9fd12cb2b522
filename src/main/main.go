package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"desktop-utils/src/clipboard"
	"desktop-utils/src/config"
	"desktop-utils/src/display"
	"desktop-utils/src/dpi"
	"desktop-utils/src/loader"
	"desktop-utils/src/logutil"
	"desktop-utils/src/notification"
	"desktop-utils/src/resources"
	"desktop-utils/src/runtimeinit"
	"desktop-utils/src/winapi"
)

type mainOptions struct {
	module   string
	stringID uint32
	quiet    bool
}

// report is what one probe run observed.
type report struct {
	Awareness dpi.Awareness
	Window    winapi.HWND
	DPI       uint16
	Monitors  []display.Monitor
	Shcore    winapi.Capability
	StringID  uint32
	Text      string
}

func (r report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DPI awareness: %s\n", r.Awareness)
	fmt.Fprintf(&b, "Window %#x: %d DPI (%.0f%%)\n", uintptr(r.Window), r.DPI, dpi.Factor(r.DPI)*100)
	if len(r.Monitors) > 0 {
		b.WriteString(display.Describe(r.Monitors))
	}
	if r.Shcore.Ok() {
		fmt.Fprintf(&b, "Per-monitor DPI: available\n")
	} else {
		fmt.Fprintf(&b, "Per-monitor DPI: unavailable (%v)\n", r.Shcore.Err())
	}
	if r.Text != "" {
		fmt.Fprintf(&b, "String %d: %s\n", r.StringID, r.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func main() {
	// Window queries stay on the thread that enabled DPI awareness.
	runtime.LockOSThread()

	if err := runWithArgs(normalizeLegacyArgs(os.Args)); err != nil {
		notification.ShowBlockingError("Desktop Utils", err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWithArgs(args []string) error {
	if len(args) == 0 {
		args = []string{"desktop-utils-probe"}
	}
	opts := &mainOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *mainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "desktop-utils-probe",
		Short:         "Report DPI, display and resource information for this desktop",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(opts)
		},
	}
	cmd.Flags().StringVar(&opts.module, "module", "", "Module to read resources from (default: this executable)")
	cmd.Flags().Uint32Var(&opts.stringID, "string-id", 1, "String table entry to show")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Do not show a message box")
	return cmd
}

func runProbe(opts *mainOptions) error {
	rt, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions:        config.LoadOptions{ResourceModuleOverride: opts.module},
		SetupLogging:       logutil.Setup,
		EnableDPIAwareness: true,
	})
	if err != nil {
		return err
	}

	display.LogConfiguration()

	r := collect(rt, opts.stringID)
	text := r.String()
	log.Printf("PROBE: %s", logutil.Fields(
		"awareness", r.Awareness,
		"hwnd", fmt.Sprintf("%#x", uintptr(r.Window)),
		"dpi", r.DPI,
		"monitors", len(r.Monitors),
		"shcore", r.Shcore.Ok(),
	))
	fmt.Println(text)

	if rt.Config.CopyToClipboard {
		if err := clipboard.Write(text); err != nil {
			log.Printf("PROBE: clipboard write failed: %v", err)
		}
	}
	if !opts.quiet {
		notification.ShowInfo("Desktop Utils", text)
	}
	return nil
}

func collect(rt *runtimeinit.Runtime, stringID uint32) report {
	r := report{Awareness: rt.Awareness, Window: foregroundWindow(), StringID: stringID}
	r.DPI = dpi.ForWindow(r.Window)

	monitors, err := display.List()
	if err != nil {
		log.Printf("PROBE: %v", err)
	}
	r.Monitors = monitors

	if lib, err := loader.Open("shcore.dll"); err != nil {
		r.Shcore = winapi.Absent("GetDpiForMonitor", err)
	} else {
		r.Shcore = lib.Lookup("GetDpiForMonitor")
		if err := lib.Close(); err != nil {
			log.Printf("PROBE: %v", err)
		}
	}

	if stringID != 0 {
		inst, release, err := resources.ModuleHandle(rt.Config.ResourceModule)
		if err != nil {
			log.Printf("PROBE: %v", err)
		} else {
			r.Text = resources.LoadString(inst, stringID)
			release()
		}
	}
	return r
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		for _, name := range []string{"module", "string-id", "quiet"} {
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
