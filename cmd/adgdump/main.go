package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"drumrack/adg"
	"drumrack/config"
	"drumrack/debug"
	"drumrack/kit"
	"drumrack/midi"
	"drumrack/preset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if os.Getenv("DRUMRACK_DEBUG") != "" {
		debug.SetOutput(os.Stderr)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "kit":
		withFile(args, func(path string) { printKit(newParser(cfg).ParseFile(path)) })
	case "raw":
		withFile(args, func(path string) { dumpRaw(newParser(cfg), path) })
	case "json":
		withFile(args, func(path string) { printJSON(newParser(cfg).ParseFile(path)) })
	case "library":
		showLibrary(cfg)
	case "scan":
		scan(cfg, args)
	case "ports":
		listPorts()
	case "monitor":
		monitor(cfg)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("adgdump - inspect Ableton drum rack imports")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  kit <file.adg>   - Import and show the pad mapping")
	fmt.Println("  raw <file.adg>   - Show extracted samples with their original notes")
	fmt.Println("  json <file.adg>  - Import and print the kit as JSON")
	fmt.Println("  library          - Show the sample library locations in use")
	fmt.Println("  scan [dir...]    - List presets found in the configured or given directories")
	fmt.Println("  ports            - List MIDI input ports")
	fmt.Println("  monitor          - Print navigation and pad events from the MIDI input")
	fmt.Println("")
	fmt.Println("Set DRUMRACK_DEBUG=1 to print import traces to stderr.")
}

func withFile(args []string, fn func(path string)) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	fn(args[0])
}

func newParser(cfg *config.Config) *adg.Parser {
	root := cfg.LibraryRoot
	if root == "" {
		root = adg.DetectLibrary()
	}
	r := adg.NewResolver(root)
	if cfg.UserLibrary != "" {
		r.UserLibrary = cfg.UserLibrary
	}
	return adg.NewParserWithResolver(r)
}

func printKit(k kit.Kit) {
	fmt.Printf("%s (%s)\n", k.Name, k.SourceFile)
	if k.Empty() {
		fmt.Println("  no samples imported")
		return
	}
	for _, m := range k.Mappings {
		label := "?"
		if p, ok := kit.PadFor(m.Note); ok {
			label = p.Label()
		}
		fmt.Printf("  %3d  %-18s %s\n", m.Note, label, m.SamplePath)
	}
}

func dumpRaw(p *adg.Parser, path string) {
	k, err := p.ParseFileRaw(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d branches with samples\n", k.Name, len(k.Mappings))
	for _, m := range k.Mappings {
		exists := "missing"
		if p.Resolver().Exists(m.SamplePath) {
			exists = "ok"
		}
		fmt.Printf("  %3d  %-7s %s\n", m.Note, exists, m.SamplePath)
	}
}

func printJSON(k kit.Kit) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(k); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showLibrary(cfg *config.Config) {
	p := newParser(cfg)
	lib := p.LibraryPath()
	if lib == "" {
		lib = "(not found)"
	}
	fmt.Printf("Core Library: %s\n", lib)
	fmt.Printf("User Library: %s\n", p.Resolver().UserLibrary)
	fmt.Printf("Custom presets: %s\n", cfg.CustomPresetsDir())
}

func scan(cfg *config.Config, dirs []string) {
	if len(dirs) == 0 {
		dirs = cfg.PresetDirs
	}
	c := preset.NewCatalog(newParser(cfg), cfg.CustomPresetsDir())
	for _, d := range dirs {
		if !c.AddDir(d) {
			fmt.Printf("Skipping %s: not a directory\n", d)
		}
	}
	c.Scan()

	for i, e := range c.Entries() {
		kind := "adg"
		if e.Custom {
			kind = "custom"
		}
		fmt.Printf("  %3d  %-6s %s\n", i, kind, e.Name)
	}
	fmt.Printf("%d presets\n", c.Len())
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	select {
	case ins := <-ch:
		for i, p := range ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func monitor(cfg *config.Config) {
	nav := midi.Navigator{
		Channel: cfg.MIDI.Channel,
		PrevCC:  uint8(cfg.MIDI.PrevCC),
		NextCC:  uint8(cfg.MIDI.NextCC),
	}
	im := midi.NewInputManager(cfg.MIDI.PortName, nav)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go im.Run(ctx)

	fmt.Println("Waiting for MIDI input. Ctrl+C to exit.")
	for e := range im.Events() {
		ts := time.Now().Format("15:04:05")
		switch e.Type {
		case midi.InputConnected:
			fmt.Printf("[%s] connected %s\n", ts, e.Port)
		case midi.InputDisconnected:
			fmt.Printf("[%s] disconnected %s\n", ts, e.Port)
		case midi.InputNav:
			fmt.Printf("[%s] %s\n", ts, e.Action)
		case midi.InputTrigger:
			label := ""
			if p, ok := kit.PadFor(e.Note); ok {
				label = p.Label()
			}
			fmt.Printf("[%s] pad %d %s vel=%d\n", ts, e.Note, label, e.Velocity)
		}
	}
}
