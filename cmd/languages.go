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
	"io"
	"time"

	"github.com/spf13/cobra"
)

var languagesProvider string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List language codes the provider supports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := buildClient(ctx, languagesProvider)
		if err != nil {
			return err
		}
		if closer, ok := client.(io.Closer); ok {
			defer closer.Close()
		}

		codes, err := client.SupportedLanguages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list languages: %w", err)
		}

		for _, code := range codes {
			fmt.Println(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)

	languagesCmd.Flags().StringVar(&languagesProvider, "provider", "google", "Translation provider")
}
