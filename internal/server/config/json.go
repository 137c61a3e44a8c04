package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/flagx"
	"github.com/cryptiom/cryptiom-server/internal/timex"
)

// JsonNetworkConfig mirrors the "network" section of the config file.
type JsonNetworkConfig struct {
	Interface string `json:"interface"`
	Port      int    `json:"port"`
}

// JsonDatabaseConfig mirrors the "db" section of the config file.
type JsonDatabaseConfig struct {
	UseInternal bool   `json:"use_internal"`
	URL         string `json:"url"`
	Path        string `json:"path"`
}

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "5s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	Network        JsonNetworkConfig  `json:"network"`
	DB             JsonDatabaseConfig `json:"db"`
	StorageTimeout timex.Duration     `json:"storage_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags. If
// neither is set, no JSON file is loaded and the Config is left untouched.
// If the file cannot be read or contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.BindInterface = c.Network.Interface
	config.BindPort = c.Network.Port
	config.UseInternalDB = c.DB.UseInternal
	config.DatabaseDSN = c.DB.URL
	config.DatabasePath = c.DB.Path
	config.StorageTimeout = time.Duration(c.StorageTimeout.Duration)
}
