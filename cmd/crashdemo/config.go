// Copyright 2018 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"mellium.im/crashdialog"
)

type link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

type config struct {
	Name           string `toml:"name"`
	AdditionalText string `toml:"additional_text"`
	Link           []link `toml:"link"`

	Report struct {
		Host  string `toml:"host"`
		Owner string `toml:"owner"`
		Repo  string `toml:"repo"`
	} `toml:"report"`

	Log struct {
		Verbose bool `toml:"verbose"`
	} `toml:"log"`

	UI struct {
		Presenter string `toml:"presenter"`
	} `toml:"ui"`
}

func defaultConfig() config {
	cfg := config{
		Name:           "Sample app",
		AdditionalText: "We are sorry, the application has crashed. To help us fix the crash, please report it using the button below.",
		Link: []link{
			{Label: "Browse known crash causes", URL: "https://example.com"},
			{Label: "Get help on our forum", URL: "https://example.com"},
			{Label: "Our website", URL: "https://example.com"},
		},
	}
	cfg.Report.Host = "github.com"
	cfg.Report.Owner = "mellium"
	cfg.Report.Repo = "crashdialog"
	cfg.UI.Presenter = "auto"
	return cfg
}

// appInfo converts the config into the information shown in crash reports.
// If no repository is configured crash reports can not be submitted.
func (cfg config) appInfo(version string) crashdialog.AppInfo {
	info := crashdialog.AppInfo{
		Name:           cfg.Name,
		AdditionalText: cfg.AdditionalText,
		PackageVersion: version,
	}
	for _, l := range cfg.Link {
		info.Links = append(info.Links, crashdialog.Link{Label: l.Label, URL: l.URL})
	}
	if cfg.Report.Owner != "" && cfg.Report.Repo != "" {
		host := cfg.Report.Host
		if host == "" {
			host = "github.com"
		}
		info.Reporter = crashdialog.NewIssueTracker(host, cfg.Report.Owner, cfg.Report.Repo)
	}
	return info
}

func printConfig(w io.Writer) error {
	return toml.NewEncoder(w).Encode(defaultConfig())
}

func loadConfig(r io.Reader) (config, error) {
	cfg := defaultConfig()
	cfg.Link = nil
	_, err := toml.NewDecoder(r).Decode(&cfg)
	return cfg, err
}

// configFile attempts to open the config file for reading.
// If a file is provided, only that file is checked, otherwise it attempts to
// open the following (falling back if the file does not exist or cannot be
// read):
//
// ./crashdemo.toml, $XDG_CONFIG_HOME/crashdemo/config.toml,
// $HOME/.config/crashdemo/config.toml, /etc/crashdemo/config.toml
func configFile(f string) (*os.File, string, error) {
	if f != "" {
		cfgFile, err := os.Open(f)
		return cfgFile, f, err
	}

	fPath := filepath.Join(".", appName+".toml")
	if cfgFile, err := os.Open(fPath); err == nil {
		return cfgFile, fPath, err
	}

	cfgDir := os.Getenv("XDG_CONFIG_HOME")
	if cfgDir != "" {
		fPath = filepath.Join(cfgDir, appName, "config.toml")
		if cfgFile, err := os.Open(fPath); err == nil {
			return cfgFile, fPath, nil
		}
	}

	u, err := user.Current()
	if err != nil || u.HomeDir == "" {
		fPath = filepath.Join("/etc", appName, "config.toml")
		cfgFile, err := os.Open(fPath)
		return cfgFile, fPath, err
	}

	fPath = filepath.Join(u.HomeDir, ".config", appName, "config.toml")
	if cfgFile, err := os.Open(fPath); err == nil {
		return cfgFile, fPath, nil
	}
	fPath = filepath.Join("/etc", appName, "config.toml")
	cfgFile, err := os.Open(fPath)
	return cfgFile, fPath, err
}
