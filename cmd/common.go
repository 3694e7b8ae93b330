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
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/tanveersultan53/polyglot/internal/logging"
	"github.com/tanveersultan53/polyglot/internal/translator"
)

// buildClient constructs the named provider from resolved configuration.
// Clients are constructed explicitly and passed down; there is no package
// level singleton.
func buildClient(ctx context.Context, name string) (translator.Client, error) {
	switch name {
	case "google":
		return translator.NewGoogleClient(ctx, viper.GetString("api_key"))
	case "googlerest":
		return translator.NewGoogleRESTClient(viper.GetString("api_key"), viper.GetString("base_url")), nil
	case "mymemory":
		return translator.NewMyMemoryClient(viper.GetString("mymemory_email"), viper.GetString("base_url")), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (available: google, googlerest, mymemory)", name)
	}
}

func newLogger() (zerolog.Logger, error) {
	return logging.New(viper.GetString("log_level"), viper.GetBool("pretty"))
}
