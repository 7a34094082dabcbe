// Command lspreg inspects the language server registration table: which
// servers are installed, what gets registered, where project roots
// resolve, and what settings each server receives.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v2"

	"github.com/dshills/lspreg/internal/config"
	"github.com/dshills/lspreg/internal/notify"
	"github.com/dshills/lspreg/internal/probe"
	"github.com/dshills/lspreg/internal/registry"
	"github.com/dshills/lspreg/internal/rootdir"
	"github.com/dshills/lspreg/internal/settings"
)

const name = "lspreg"

const version = "0.1.0"

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	os.Exit(0)
}

func realMain() error {
	app := &cli.App{
		Name:    name,
		Version: version,
		Usage:   "Inspect the language server registration table.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an alternative configuration file.",
			},
		},
		Commands: cli.Commands{
			checkCommand(),
			listCommand(),
			rootCommand(),
			settingsCommand(),
		},
	}
	return app.Run(os.Args)
}

// loadEntries loads configuration and returns the customized catalog
// entries plus the registry environment.
func loadEntries(c *cli.Context) ([]registry.CatalogEntry, registry.Env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, registry.Env{}, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, registry.Env{}, err
	}

	return cfg.Customize(registry.Catalog()), cfg.Env(cwd), nil
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Probe every known server binary and report availability.",
		Action: func(c *cli.Context) error {
			entries, _, err := loadEntries(c)
			if err != nil {
				return err
			}

			p := probe.Default()
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("SERVER", "EXECUTABLE", "STATUS")
			for _, entry := range entries {
				status := "missing"
				if p.Available(entry.Executable) {
					status = "available"
				}
				if err := table.Append(entry.ID, entry.Executable, status); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Build the registration table and print the registered servers.",
		Action: func(c *cli.Context) error {
			entries, env, err := loadEntries(c)
			if err != nil {
				return err
			}

			notifier := notify.New()
			notifier.Subscribe(notify.Writer(os.Stderr))

			builder := registry.NewBuilder(env, notifier)
			if err := builder.RegisterCatalog(entries); err != nil {
				return err
			}
			reg := builder.Build()

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("SERVER", "COMMAND", "FILE TYPES", "ROOT MARKERS")
			for _, desc := range reg.All() {
				err := table.Append(
					desc.ID,
					strings.Join(desc.Command, " "),
					strings.Join(desc.FileTypes, ", "),
					strings.Join(desc.RootMarkers, ", "),
				)
				if err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "root",
		Usage: "Resolve the project root for a file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "File whose project root to resolve.",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Use this server's root markers instead of the combined set.",
			},
		},
		Action: func(c *cli.Context) error {
			entries, env, err := loadEntries(c)
			if err != nil {
				return err
			}

			markers, err := markersFor(entries, env, c.String("server"))
			if err != nil {
				return err
			}

			result, err := rootdir.FindForFile(c.String("file"), markers, env.WorkDir)
			if err != nil {
				return err
			}

			if result.Marker == "" {
				fmt.Printf("%s (fallback, no marker found)\n", result.Root)
				return nil
			}
			fmt.Printf("%s (marker: %s)\n", result.Root, result.Marker)
			return nil
		},
	}
}

// markersFor returns one server's ordered markers, or the union of all
// catalog markers in catalog order when serverID is empty.
func markersFor(entries []registry.CatalogEntry, env registry.Env, serverID string) ([]string, error) {
	if serverID != "" {
		for _, entry := range entries {
			if entry.ID == serverID {
				return entry.Factory(env).RootMarkers, nil
			}
		}
		return nil, fmt.Errorf("unknown server: %s", serverID)
	}

	var markers []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, marker := range entry.Factory(env).RootMarkers {
			if !seen[marker] {
				seen[marker] = true
				markers = append(markers, marker)
			}
		}
	}
	return markers, nil
}

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:      "settings",
		Usage:     "Print the settings payload a server would receive.",
		ArgsUsage: "<server-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Print only the value at this dot-path.",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: %s settings <server-id>", name)
			}
			serverID := c.Args().First()

			entries, env, err := loadEntries(c)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				if entry.ID != serverID {
					continue
				}

				payload, err := entry.Factory(env).Settings.Payload()
				if err != nil {
					return err
				}

				if path := c.String("path"); path != "" {
					val, ok := settings.Get(payload, path)
					if !ok {
						return fmt.Errorf("no value at %q for %s", path, serverID)
					}
					fmt.Println(val)
					return nil
				}

				os.Stdout.Write(pretty.Pretty(payload))
				return nil
			}
			return fmt.Errorf("unknown server: %s", serverID)
		},
	}
}
