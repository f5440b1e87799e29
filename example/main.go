package main

import (
	"log"
	"os"

	"params"
)

const configFilePath = "backup.ini"

const initialConfig = `# demo configuration
answer = 42

[backup]
root = /srv/backup
remote = server.ngc.com
tape = /dev/st0
blocking = 20
targets = %(root)s/home, %(root)s/etc

[offsite]
remote = mirror.ngc.com
tape = /dev/st9
`

func main() {
	log.Println("writing demo configuration file...")
	if err := os.WriteFile(configFilePath, []byte(initialConfig), 0644); err != nil {
		log.Fatalf("failed to write %s: %v", configFilePath, err)
	}
	defer func() {
		os.Remove(configFilePath)
		os.Unsetenv("BACKUP_BLOCKING")
	}()

	// An environment value to demonstrate precedence over the file.
	os.Setenv("BACKUP_BLOCKING", "64")

	section := &params.Parameter{
		Name: "section",
		Arg:  &params.Option{Short: "s"},
		Help: "configuration section to read tape settings from",
	}

	parameters := []*params.Parameter{
		section,
		{
			Name:    "answer",
			Env:     &params.EnvVar{},
			Config:  params.UseConfig(),
			Convert: params.ToInt,
			Default: -1,
			Help:    "the answer to everything",
		},
		{
			Name:    "remote",
			Group:   "backup",
			Arg:     &params.Option{Argument: params.Argument{NoPrefix: true}, Short: "r"},
			Env:     &params.EnvVar{},
			Config:  params.SectionFrom(section),
			Help:    "remote backup host",
			Default: "localhost",
		},
		{
			Name:    "tape",
			Group:   "backup",
			Arg:     &params.Option{Argument: params.Argument{NoPrefix: true}, Short: "t"},
			Env:     &params.EnvVar{},
			Config:  params.SectionFrom(section),
			Default: "/dev/nst0",
			Help:    "target tape device",
		},
		{
			Name:    "blocking",
			Group:   "backup",
			Env:     &params.EnvVar{},
			Config:  params.UseConfig(),
			Convert: params.ToInt,
			Default: 1,
			Help:    "tape blocking factor",
		},
		{
			Name:    "targets",
			Group:   "backup",
			Config:  params.UseConfig(),
			Convert: params.ToList,
			Help:    "directories to back up",
		},
	}

	args := os.Args[1:]
	if len(args) == 0 {
		// Pick the offsite section so the demo shows delegation at work.
		args = []string{"--section", "offsite"}
	}

	values, err := params.NewBuilder("backup", "tape backup demo").
		WithParameters(parameters...).
		WithArgs(args).
		WithSource(params.File(configFilePath)).
		Collect()
	if err != nil {
		log.Fatalf("collection failed: %v", err)
	}
	if values == nil {
		return // help was printed
	}

	log.Println("resolved values:")
	for name, value := range values {
		log.Printf("  %-21s= %v", name, value)
	}

	var settings struct {
		Remote   string   `param:"backup_remote"`
		Tape     string   `param:"backup_tape"`
		Blocking int      `param:"backup_blocking"`
		Targets  []string `param:"backup_targets"`
	}
	if err := values.Scan(&settings); err != nil {
		log.Fatalf("scan failed: %v", err)
	}
	log.Printf("scanned settings: %+v", settings)
}
