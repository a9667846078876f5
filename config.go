package ftpserver

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/naoina/toml"
)

// Account is one static username/password/home-directory entry in the
// configuration file.
type Account struct {
	User string
	Pass string
	Dir  string
}

// FileConfig is the on-disk configuration shape, loaded from TOML.
type FileConfig struct {
	ListenAddr string
	Root       string
	Users      []Account
}

// defaultConfig is written out when -conf points at a file that doesn't
// exist yet, mirroring a first-run quick start.
func defaultConfig() FileConfig {
	return FileConfig{
		ListenAddr: "0.0.0.0:2121",
		Root:       ".",
	}
}

// LoadConfig reads and parses path, creating it with defaultConfig's
// contents first if it doesn't exist.
func LoadConfig(path string) (FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaultConfig(path); err != nil {
			return FileConfig{}, err
		}
	}

	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return FileConfig{}, newDriverError(fmt.Sprintf("reading %s", path), err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(buf, &cfg); err != nil {
		return FileConfig{}, newDriverError(fmt.Sprintf("parsing %s", path), err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "0.0.0.0:2121"
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}

	return cfg, nil
}

func writeDefaultConfig(path string) error {
	cfg := defaultConfig()

	buf, err := toml.Marshal(&cfg)
	if err != nil {
		return newDriverError("encoding default config", err)
	}

	if err := ioutil.WriteFile(path, buf, 0o644); err != nil {
		return newDriverError(fmt.Sprintf("writing %s", path), err)
	}

	return nil
}

// AuthFuncFromAccounts builds an AuthFunc from the configured account
// table, always granting anonymous access regardless of its contents.
func AuthFuncFromAccounts(accounts []Account) AuthFunc {
	table := make(map[string]string, len(accounts))
	for _, a := range accounts {
		table[a.User] = a.Pass
	}

	return StaticAccounts(table)
}
