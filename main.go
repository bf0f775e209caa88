package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"drumrack/adg"
	"drumrack/config"
	"drumrack/debug"
	"drumrack/midi"
	"drumrack/preset"
	"drumrack/theme"
	"drumrack/tui"
)

func main() {
	libFlag := flag.String("lib", "", "Core Library directory (default: auto-detect)")
	dirFlag := flag.String("dir", "", "extra preset directory to scan")
	portFlag := flag.String("midi", "", "MIDI input name to follow (substring)")
	saveFlag := flag.Bool("save", false, "store -lib/-dir/-midi in the config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *libFlag != "" {
		cfg.LibraryRoot = *libFlag
	}
	if *dirFlag != "" {
		cfg.AddPresetDir(*dirFlag)
	}
	if *portFlag != "" {
		cfg.MIDI.PortName = *portFlag
	}
	if *saveFlag {
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
		}
	}

	// Diagnostics are best effort
	if err := debug.Enable(cfg.DebugLog); err != nil {
		fmt.Printf("Debug log disabled: %v\n", err)
	}
	defer debug.Disable()

	libraryRoot := cfg.LibraryRoot
	if libraryRoot == "" {
		libraryRoot = adg.DetectLibrary()
	}
	resolver := adg.NewResolver(libraryRoot)
	if cfg.UserLibrary != "" {
		resolver.UserLibrary = cfg.UserLibrary
	}
	debug.Log("main", "core library = %q", libraryRoot)

	// Build preset catalog
	catalog := preset.NewCatalog(adg.NewParserWithResolver(resolver), cfg.CustomPresetsDir())
	for _, dir := range cfg.PresetDirs {
		catalog.AddDir(dir)
	}
	if libraryRoot != "" {
		catalog.AddDir(filepath.Join(libraryRoot, "Presets", "Instruments", "Drum Rack"))
	}
	catalog.Scan()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := catalog.Watch(ctx)
	if err != nil {
		debug.Log("main", "preset watch disabled: %v", err)
	}

	// Follow a MIDI input for next/previous (handles hot-plug)
	inputs := midi.NewInputManager(cfg.MIDI.PortName, midi.Navigator{
		Channel: cfg.MIDI.Channel,
		PrevCC:  uint8(cfg.MIDI.PrevCC),
		NextCC:  uint8(cfg.MIDI.NextCC),
	})
	go inputs.Run(ctx)

	th := theme.New(theme.LoadOrDefault(cfg.Palette))

	m := tui.NewModel(catalog, inputs, th, changes)
	m.Exists = resolver.Exists
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
