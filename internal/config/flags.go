package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-session-sign-key session token signing secret
//	-session-issuer session token issuer name
//	-session-duration session lifetime (e.g., "720h")
//	-autosave-interval autosave flush interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	return parseFlagsFrom(flag.CommandLine, os.Args[1:])
}

func parseFlagsFrom(fs *flag.FlagSet, args []string) *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var autosaveInterval time.Duration

	fs.StringVar(&databaseDSN, "d", "", "Database DSN (SQLite file path)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing secret")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 720h)")
	fs.DurationVar(&autosaveInterval, "autosave-interval", 0, "Autosave interval (e.g., 30s)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			AutosaveInterval: autosaveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
