package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/auroralaboratories/pulse-binding"
	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/audiofile"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/auroralaboratories/pulse-binding/version"
	"github.com/ghetzel/cli"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/spf13/viper"
)

func main() {
	var pa *pulse.Conn
	var config *viper.Viper

	app := cli.NewApp()
	app.Name = `pulse`
	app.Usage = `A utility for inspecting and controlling a PulseAudio sound server.`
	app.Version = pulse.Version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `info`,
			EnvVar: `LOGLEVEL`,
		},
		cli.StringFlag{
			Name:  `format, f`,
			Usage: `The output format of data returned.`,
			Value: `json`,
		},
		cli.StringFlag{
			Name:  `server, s`,
			Usage: `The PulseAudio server to connect to.`,
		},
		cli.StringFlag{
			Name:  `fields, F`,
			Usage: `Comma-separated fields to output for listed objects (e.g. index,name,application.name).`,
		},
		cli.StringFlag{
			Name:  `timeout, t`,
			Usage: `How long to wait for each request to the server.`,
			Value: `5s`,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetLevelString(c.String(`log-level`))

		if v, err := loadConfig(c); err == nil {
			config = v
		} else {
			log.Fatalf("Cannot load configuration: %v", err)
		}

		return nil
	}

	connect := func() *pulse.Conn {
		if pa == nil {
			if p, err := pulse.NewWithOptions(config.GetString(`name`), connOptions(config)); err == nil {
				pa = p
			} else {
				log.Fatalf("Cannot connect to PulseAudio: %v", err)
			}
		}

		return pa
	}

	app.After = func(c *cli.Context) error {
		if pa != nil {
			return pa.Close()
		}

		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:  `info`,
			Usage: `Show PulseAudio daemon information.`,
			Action: func(c *cli.Context) {
				if info, err := connect().GetServerInfo(); err == nil {
					print(config, info, nil)
				} else {
					log.Fatalf("Cannot get PulseAudio info: %v", err)
				}
			},
		}, {
			Name:      `sinks`,
			Usage:     `List audio sinks, optionally filtered by FIELD OP VALUE expressions (e.g. state=running, application.name~fire, index>=2).`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if sinks, err := connect().GetSinks(c.Args()...); err == nil {
					print(config, sinks, func() {
						table(func(tw *tabwriter.Writer) {
							for _, sink := range sinks {
								fmt.Fprintf(tw, "%d\t%s\t%s\t%.0f%%\t%v\n", sink.Index, sink.Name, sink.State, sink.VolumeFactor*100, sink.Muted)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `sources`,
			Usage:     `List audio sources, optionally filtered by FIELD OP VALUE expressions.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if sources, err := connect().GetSources(c.Args()...); err == nil {
					print(config, sources, func() {
						table(func(tw *tabwriter.Writer) {
							for _, source := range sources {
								fmt.Fprintf(tw, "%d\t%s\t%s\t%.0f%%\t%v\n", source.Index, source.Name, source.State, source.VolumeFactor*100, source.Muted)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `sink-inputs`,
			Usage:     `List streams currently playing to a sink.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if inputs, err := connect().GetSinkInputs(c.Args()...); err == nil {
					print(config, inputs, func() {
						table(func(tw *tabwriter.Writer) {
							for _, input := range inputs {
								fmt.Fprintf(tw, "%d\t%d\t%s\t%.0f%%\t%v\n", input.Index, input.SinkIndex, input.P(props.ApplicationName), input.VolumeFactor*100, input.Muted)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `clients`,
			Usage:     `List PulseAudio clients.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if clients, err := connect().GetClients(c.Args()...); err == nil {
					print(config, clients, func() {
						table(func(tw *tabwriter.Writer) {
							for _, client := range clients {
								fmt.Fprintf(tw, "%d\t%s\t%s\n", client.Index, client.Name, client.P(props.ApplicationProcessBin))
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `modules`,
			Usage:     `List loaded modules.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if modules, err := connect().GetModules(c.Args()...); err == nil {
					print(config, modules, func() {
						table(func(tw *tabwriter.Writer) {
							for _, module := range modules {
								fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", module.Index, module.Name, module.P(props.ModuleDescription), module.Argument)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `source-outputs`,
			Usage:     `List streams currently recording from a source.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if outputs, err := connect().GetSourceOutputs(c.Args()...); err == nil {
					print(config, outputs, func() {
						table(func(tw *tabwriter.Writer) {
							for _, output := range outputs {
								fmt.Fprintf(tw, "%d\t%d\t%s\t%.0f%%\t%v\n", output.Index, output.SourceIndex, output.P(props.ApplicationName), output.VolumeFactor*100, output.Muted)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `move-source-output`,
			Usage:     `Move a recording stream to another source.`,
			ArgsUsage: `INDEX SOURCE`,
			Action: func(c *cli.Context) {
				index, err := strconv.ParseUint(c.Args().First(), 10, 32)

				if err != nil {
					log.Fatalf("Invalid source output index: %v", err)
				}

				output := connect().SourceOutput(uint32(index))

				if err := output.MoveToSourceNamed(c.Args().Get(1)); err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `cards`,
			Usage:     `List sound cards and their profiles.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if cards, err := connect().GetCards(c.Args()...); err == nil {
					print(config, cards, func() {
						table(func(tw *tabwriter.Writer) {
							for _, card := range cards {
								fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", card.Index, card.Name, card.P(props.DeviceDescription), card.ActiveProfile)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `set-card-profile`,
			Usage:     `Switch a card to another profile.`,
			ArgsUsage: `CARD PROFILE`,
			Action: func(c *cli.Context) {
				if card, err := connect().GetCard(c.Args().First()); err == nil {
					if err := card.SetProfile(c.Args().Get(1)); err != nil {
						log.Fatalf("PulseAudio: %v", err)
					}
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `samples`,
			Usage:     `List the server's sample cache.`,
			ArgsUsage: `[FILTER ...]`,
			Action: func(c *cli.Context) {
				if samples, err := connect().GetSamples(c.Args()...); err == nil {
					print(config, samples, func() {
						table(func(tw *tabwriter.Writer) {
							for _, sample := range samples {
								fmt.Fprintf(tw, "%d\t%s\t%s\t%v\n", sample.Index, sample.Name, pulse.SampleSpecString(sample.SampleSpec), time.Duration(sample.Duration)*time.Microsecond)
							}
						})
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:  `stat`,
			Usage: `Show the daemon's memory usage.`,
			Action: func(c *cli.Context) {
				if stat, err := connect().Stat(); err == nil {
					print(config, stat, func() {
						fmt.Printf("memblocks in use: %d (%d bytes)\n", stat.MemblockTotal, stat.MemblockTotalSize)
						fmt.Printf("memblocks allocated: %d (%d bytes)\n", stat.MemblockAllocated, stat.MemblockAllocatedSize)
						fmt.Printf("sample cache: %d bytes\n", stat.ScacheSize)
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `set-default-sink`,
			Usage:     `Make the named sink the default output.`,
			ArgsUsage: `NAME`,
			Action: func(c *cli.Context) {
				if err := connect().SetDefaultSink(c.Args().First()); err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `set-default-source`,
			Usage:     `Make the named source the default input.`,
			ArgsUsage: `NAME`,
			Action: func(c *cli.Context) {
				if err := connect().SetDefaultSource(c.Args().First()); err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `volume`,
			Usage:     `Set a sink's volume as a factor of normal (1.0 = 100%).`,
			ArgsUsage: `SINK FACTOR`,
			Action: func(c *cli.Context) {
				factor, err := strconv.ParseFloat(c.Args().Get(1), 64)

				if err != nil {
					log.Fatalf("Invalid volume factor: %v", err)
				}

				if sink, err := connect().GetSink(c.Args().First()); err == nil {
					if err := sink.SetVolume(factor); err != nil {
						log.Fatalf("PulseAudio: %v", err)
					}
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `mute`,
			Usage:     `Toggle mute on a sink.`,
			ArgsUsage: `SINK`,
			Action: func(c *cli.Context) {
				if sink, err := connect().GetSink(c.Args().First()); err == nil {
					if err := sink.ToggleMute(); err != nil {
						log.Fatalf("PulseAudio: %v", err)
					}
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `load-module`,
			Usage:     `Load a module into the server.`,
			ArgsUsage: `NAME [ARGUMENTS]`,
			Action: func(c *cli.Context) {
				if module, err := connect().LoadModule(c.Args().First(), c.Args().Get(1)); err == nil {
					print(config, module, func() {
						fmt.Println(module.Index)
					})
				} else {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `unload-module`,
			Usage:     `Unload a module by index.`,
			ArgsUsage: `INDEX`,
			Action: func(c *cli.Context) {
				index, err := strconv.ParseUint(c.Args().First(), 10, 32)

				if err != nil {
					log.Fatalf("Invalid module index: %v", err)
				}

				if err := connect().UnloadModule(uint32(index)); err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `subscribe`,
			Usage:     `Print server events until interrupted.`,
			ArgsUsage: `[sink|source|sink-input|source-output|module|client|sample-cache|server|card|all ...]`,
			Action: func(c *cli.Context) {
				var types []pulse.EventType

				for _, name := range c.Args() {
					if t := pulse.ParseEventType(name); t != pulse.NullEvent {
						types = append(types, t)
					} else {
						log.Fatalf("Unknown event type %q", name)
					}
				}

				events, err := connect().Subscribe(types...)

				if err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}

				interrupt := make(chan os.Signal, 1)
				signal.Notify(interrupt, os.Interrupt)

				for {
					select {
					case event, ok := <-events:
						if !ok {
							return
						}

						print(config, event, func() {
							fmt.Printf("%s %s #%d\n", event.Operation, event.Type, event.Index)
						})
					case <-interrupt:
						pa.Unsubscribe()
						return
					}
				}
			},
		}, {
			Name:      `play`,
			Usage:     `Play a WAV, MP3 or Ogg Vorbis file.`,
			ArgsUsage: `FILE`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `device, d`,
					Usage: `The sink to play to (default sink if empty).`,
				},
			},
			Action: func(c *cli.Context) {
				src, err := audiofile.Open(c.Args().First())

				if err != nil {
					log.Fatalf("Cannot open audio file: %v", err)
				}

				defer src.Close()

				stream, err := connect().NewPlaybackStream(pulse.StreamOptions{
					Name:       c.Args().First(),
					Device:     c.String(`device`),
					SampleSpec: src.Spec,
					Properties: map[string]string{
						props.MediaName:     filepath.Base(c.Args().First()),
						props.MediaFilename: c.Args().First(),
						props.MediaRole:     `music`,
					},
				})

				if err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}

				if n, err := stream.ReadFrom(src); err == nil {
					log.Debugf("played %d bytes (%v)", n, time.Duration(src.Spec.BytesToUsec(uint64(n)))*time.Microsecond)
				} else {
					log.Errorf("Playback failed: %v", err)
				}

				if err := stream.Close(); err != nil {
					log.Fatalf("PulseAudio: %v", err)
				}
			},
		}, {
			Name:      `record`,
			Usage:     `Record from a source into a WAV file.`,
			ArgsUsage: `FILE`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `device, d`,
					Usage: `The source to record from (default source if empty).`,
				},
				cli.DurationFlag{
					Name:  `duration, D`,
					Usage: `Stop after this long (0 records until interrupted).`,
				},
				cli.IntFlag{
					Name:  `rate, r`,
					Usage: `Sample rate in Hz.`,
					Value: 44100,
				},
				cli.IntFlag{
					Name:  `channels, c`,
					Usage: `Number of channels.`,
					Value: 2,
				},
			},
			Action: func(c *cli.Context) {
				record(connect(), c)
			},
		}, {
			Name:  `version`,
			Usage: `Show binding, header and library versions.`,
			Action: func(c *cli.Context) {
				major, minor := version.Target.Version()

				info := map[string]interface{}{
					`binding`:  pulse.Version,
					`target`:   fmt.Sprintf("%d.%d", major, minor),
					`headers`:  pulse.HeaderVersion(),
					`library`:  pulse.LibraryVersion(),
					`protocol`: version.ProtocolVersion,
				}

				if err := pulse.CheckLibraryVersion(); err != nil {
					info[`warning`] = err.Error()
				}

				print(config, info, nil)
			},
		},
	}

	app.Run(os.Args)
}

func record(pa *pulse.Conn, c *cli.Context) {
	spec := capi.SampleSpec{
		Format:   capi.SampleS16LE,
		Rate:     uint32(c.Int(`rate`)),
		Channels: uint8(c.Int(`channels`)),
	}

	file, err := os.Create(c.Args().First())

	if err != nil {
		log.Fatalf("Cannot create output file: %v", err)
	}

	defer file.Close()

	out, err := audiofile.NewRecorder(file, spec)

	if err != nil {
		log.Fatalf("Cannot record: %v", err)
	}

	stream, err := pa.NewRecordStream(pulse.StreamOptions{
		Name:       c.Args().First(),
		Device:     c.String(`device`),
		SampleSpec: spec,
		Properties: map[string]string{
			props.MediaFilename: c.Args().First(),
			props.MediaRole:     `production`,
		},
	})

	if err != nil {
		log.Fatalf("PulseAudio: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	if d := c.Duration(`duration`); d > 0 {
		time.AfterFunc(d, func() {
			stop <- os.Interrupt
		})
	}

	// Close unblocks a pending Read.
	go func() {
		<-stop
		stream.Close()
	}()

	buf := make([]byte, pulse.DEFAULT_ASYNC_BUFFER_SIZE)
	var total int

	for {
		n, err := stream.Read(buf)

		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				log.Fatalf("Cannot write output file: %v", werr)
			}

			total += n
		}

		if err != nil {
			break
		}
	}

	if err := out.Close(); err != nil {
		log.Fatalf("Cannot finish output file: %v", err)
	}

	log.Infof("recorded %d bytes to %s", total, c.Args().First())
}

func table(rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
	rows(tw)
	tw.Flush()
}

// project narrows listed objects to the fields named by --fields.
func project(config *viper.Viper, data interface{}) interface{} {
	fields := sliceutil.CompactString(strings.Split(config.GetString(`fields`), `,`))

	if len(fields) == 0 {
		return data
	}

	if subject, ok := data.(props.Subject); ok {
		return props.Select(subject, fields...)
	}

	items := sliceutil.Sliceify(data)
	out := make([]map[string]interface{}, 0, len(items))

	for _, item := range items {
		if subject, ok := item.(props.Subject); ok {
			out = append(out, props.Select(subject, fields...))
		} else {
			return data
		}
	}

	return out
}

func print(config *viper.Viper, data interface{}, txtfn func()) {
	if data != nil {
		switch config.GetString(`format`) {
		case `json`:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent(``, `  `)
			enc.Encode(project(config, data))
		default:
			if txtfn != nil {
				txtfn()
			} else {
				table(func(tw *tabwriter.Writer) {
					for _, line := range sliceutil.Compact([]interface{}{data}) {
						fmt.Fprintf(tw, "%v\n", line)
					}
				})
			}
		}
	}
}
