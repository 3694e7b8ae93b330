/*
Copyright © 2026 The polyglot authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "polyglot",
	Short: "Translation client for managed translation backends",
	Long: `polyglot translates text through a managed translation backend
(Google Cloud Translation or MyMemory) and classifies every failure into a
typed taxonomy: network, auth, quota, invalid request, unknown.

Use "polyglot translate --help" for translation options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.polyglot.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Human-readable console logging")
	rootCmd.PersistentFlags().String("api-key", "", "Backend API key")
	rootCmd.PersistentFlags().String("base-url", "", "Override backend base URL")
	rootCmd.PersistentFlags().String("mymemory-email", "", "MyMemory email (for higher limits)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("mymemory_email", rootCmd.PersistentFlags().Lookup("mymemory-email"))
}

// initConfig layers configuration: flags over environment (POLYGLOT_ prefix,
// .env honored) over the config file.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".polyglot")
		}
	}

	viper.SetEnvPrefix("POLYGLOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", filepath.Clean(viper.ConfigFileUsed()))
	}
}
